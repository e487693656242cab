/* Copyright (C) 2025 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package kmersparsity

/* -------------------------------------------------------------------------- */

import "os"
import "path/filepath"
import "strings"
import "testing"
import "time"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

func newTestReport() Report {
  config := DefaultConfig()
  config.KmerSize = 31
  config.TmpDir   = "/tmp/kmers/"
  result := Result{Sparsity: 50.0, NNZ: 3, Rows: 3, Cols: 2, MatchesPerGenome: []int{2, 1}}
  return NewReport(config, result, 1500*time.Millisecond)
}

func TestReport1(test *testing.T) {
  r := newTestReport()
  if r.Filename() != "feature_matrix_stats_k_min_1_max_1000000000_d_0.txt" {
    test.Errorf("unexpected report file name: %s", r.Filename())
  }
  if r.MeanMatches != 1.5 || r.StdMatches < 0.70 || r.StdMatches > 0.71 {
    test.Errorf("TestReport1 failed: %v %v", r.MeanMatches, r.StdMatches)
  }
  s := r.String()
  for _, line := range []string{
    "The sparsity of the genome k-mer matrix is: 50.00\n",
    "K-mer size: 31\n",
    "Temporary directory: /tmp/kmers/\n",
    "-d flag activated: No\n",
    "Execution time: 1.50 seconds\n",
    "Matrix size: 3 x 2\n" } {
    if !strings.Contains(s, line) {
      test.Errorf("report does not contain `%s'", strings.TrimSpace(line))
    }
  }
  r.DisableNormalization = true
  if !strings.HasSuffix(r.Filename(), "_d_1.txt") || !strings.Contains(r.String(), "-d flag activated: Yes") {
    test.Error("TestReport1 failed")
  }
}

func TestReport2(test *testing.T) {
  dir := test.TempDir()
  r   := newTestReport()

  filename, err := r.ExportText(dir)
  if err != nil {
    test.Fatal(err)
  }
  if data, err := os.ReadFile(filename); err != nil || string(data) != r.String() {
    test.Error("TestReport2 failed")
  }
  filename = filepath.Join(dir, "report.toml")
  if err := r.ExportToml(filename); err != nil {
    test.Fatal(err)
  }
  data, err := os.ReadFile(filename)
  if err != nil {
    test.Fatal(err)
  }
  for _, s := range []string{"sparsity = 50", "kmer-size = 31", "genomes = 2", "execution-time = 1.5"} {
    if !strings.Contains(string(data), s) {
      test.Errorf("toml report does not contain `%s'", s)
    }
  }
}

func TestReport3(test *testing.T) {
  y, err := RunningDensity([]int{2, 1, 0}, 4)
  if err != nil {
    test.Fatal(err)
  }
  if len(y) != 3 || y[0] != 50.0 || y[1] != 37.5 || y[2] != 25.0 {
    test.Errorf("TestReport3 failed: %v", y)
  }
  if _, err := RunningDensity([]int{1}, 0); !errors.Is(err, ErrDenominatorZero) {
    test.Error("TestReport3 failed")
  }
  filename := filepath.Join(test.TempDir(), "density.png")
  if err := ExportDensityPlot(filename, []int{2, 1, 0}, 4); err != nil {
    test.Fatal(err)
  }
  if info, err := os.Stat(filename); err != nil || info.Size() == 0 {
    test.Error("TestReport3 failed")
  }
}

func TestReport4(test *testing.T) {
  r := newTestReport()
  if n := strings.Count(reportInsertStatement(DefaultReportTable), "?"); n != len(r.sqlValues()) {
    test.Errorf("insert statement has %d placeholders for %d values", n, len(r.sqlValues()))
  }
  if !strings.HasPrefix(reportCreateStatement("stats"), "CREATE TABLE IF NOT EXISTS stats (") {
    test.Error("TestReport4 failed")
  }
  var e ConfigError
  if err := ExportReportSQL("user:pass@tcp(localhost:3306)/db", "stats; DROP TABLE x", r); !errors.As(err, &e) {
    test.Errorf("expected ConfigError, got: %v", err)
  }
}
