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

import "fmt"
import "io"
import "os"
import "path/filepath"
import "strings"
import "time"

import "github.com/pelletier/go-toml/v2"
import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// Summary of a sparsity computation together with its parameters.
type Report struct {
  Sparsity             float64       `toml:"sparsity" comment:"Percentage of non-zero cells"`
  NNZ                  int64         `toml:"nnz"`
  Rows                 int           `toml:"unique-kmers" comment:"Matrix dimensions"`
  Cols                 int           `toml:"genomes"`
  KmerSize             int           `toml:"kmer-size" comment:"Parameters"`
  TmpDir               string        `toml:"tmp-dir"`
  MinThreshold         int           `toml:"min"`
  MaxThreshold         int           `toml:"max"`
  DisableNormalization bool          `toml:"disable-normalization"`
  Elapsed              time.Duration `toml:"-"`
  Seconds              float64       `toml:"execution-time" comment:"Seconds"`
  MeanMatches          float64       `toml:"mean-kmers-per-genome" comment:"Non-zero cells per genome"`
  StdMatches           float64       `toml:"std-kmers-per-genome"`
}

/* -------------------------------------------------------------------------- */

func NewReport(config Config, result Result, elapsed time.Duration) Report {
  r := Report{
    Sparsity            : result.Sparsity,
    NNZ                 : result.NNZ,
    Rows                : result.Rows,
    Cols                : result.Cols,
    KmerSize            : config.KmerSize,
    TmpDir              : config.TmpDir,
    MinThreshold        : config.MinThreshold,
    MaxThreshold        : config.MaxThreshold,
    DisableNormalization: config.DisableNormalization,
    Elapsed             : elapsed,
    Seconds             : elapsed.Seconds() }
  if n := len(result.MatchesPerGenome); n > 0 {
    x := make([]float64, n)
    for i, m := range result.MatchesPerGenome {
      x[i] = float64(m)
    }
    if n == 1 {
      r.MeanMatches = x[0]
    } else {
      r.MeanMatches, r.StdMatches = stat.MeanStdDev(x, nil)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (r Report) flagD() int {
  if r.DisableNormalization {
    return 1
  }
  return 0
}

// Report file name, which only depends on the thresholds and the
// normalization flag.
func (r Report) Filename() string {
  return fmt.Sprintf("feature_matrix_stats_k_min_%d_max_%d_d_%d.txt", r.MinThreshold, r.MaxThreshold, r.flagD())
}

func (r Report) WriteText(w io.Writer) error {
  d := "No"
  if r.DisableNormalization {
    d = "Yes"
  }
  _, err := fmt.Fprintf(w,
    "The sparsity of the genome k-mer matrix is: %.2f\n" +
    "K-mer size: %d\n"                                   +
    "Temporary directory: %s\n"                          +
    "Min value: %d\n"                                    +
    "Max value: %d\n"                                    +
    "-d flag activated: %s\n"                            +
    "Execution time: %.2f seconds\n"                     +
    "Non-zero elements: %d\n"                            +
    "Matrix size: %d x %d\n",
    r.Sparsity, r.KmerSize, r.TmpDir, r.MinThreshold, r.MaxThreshold, d, r.Elapsed.Seconds(),
    r.NNZ, r.Rows, r.Cols)
  return err
}

func (r Report) String() string {
  var b strings.Builder
  r.WriteText(&b)
  return b.String()
}

// Write report into directory and return the file name.
func (r Report) ExportText(directory string) (string, error) {
  filename := filepath.Join(directory, r.Filename())
  f, err := os.Create(filename)
  if err != nil {
    return filename, err
  }
  if err := r.WriteText(f); err != nil {
    f.Close()
    return filename, err
  }
  return filename, f.Close()
}

func (r Report) ExportToml(filename string) error {
  r.Seconds = r.Elapsed.Seconds()
  data, err := toml.Marshal(r)
  if err != nil {
    return err
  }
  return os.WriteFile(filename, data, 0666)
}
