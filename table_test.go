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

import "bytes"
import "path/filepath"
import "strings"
import "testing"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

func TestTable1(test *testing.T) {
  s := "\ufeffK-mer,Count,Extra\nAAA,3,x\nCCC, 1 ,y\n\nGGG,7,z\n"
  t := Table{}
  if err := t.ReadCSV(strings.NewReader(s), []string{"Count", "K-mer"}); err != nil {
    test.Fatal(err)
  }
  if t.Length() != 3 || t.ColLength() != 2 {
    test.Fatalf("invalid table dimensions: %d x %d", t.Length(), t.ColLength())
  }
  kmers  := t.GetColumn("K-mer")
  counts := t.GetColumn("Count")
  if kmers[0] != "AAA" || kmers[1] != "CCC" || kmers[2] != "GGG" {
    test.Error("TestTable1 failed")
  }
  if counts[1] != "1" || counts[2] != "7" {
    test.Error("TestTable1 failed")
  }
  if t.GetColumn("Extra") != nil {
    test.Error("TestTable1 failed")
  }
}

func TestTable2(test *testing.T) {
  t := Table{}
  if err := t.ReadCSV(strings.NewReader("Kmer,Count\nAAA,1\n"), []string{"K-mer"}); err == nil {
    test.Error("missing column not detected")
  }
  if err := t.ReadCSV(strings.NewReader(""), []string{"K-mer"}); err == nil {
    test.Error("empty table not detected")
  }
  if err := t.ReadCSV(strings.NewReader("Count,K-mer\n1\n"), []string{"K-mer"}); err == nil {
    test.Error("short row not detected")
  }
}

func TestTable3(test *testing.T) {
  t := NewTable([]string{"K-mer", "Count"}, [][]string{{"AAA", "CCC"}, {"2", "5"}})

  p, err := t.Project("Count")
  if err != nil {
    test.Fatal(err)
  }
  if p.ColLength() != 1 || p.Length() != 2 || p.GetColumn("Count")[1] != "5" {
    test.Error("TestTable3 failed")
  }
  if _, err := t.Project("Missing"); err == nil {
    test.Error("TestTable3 failed")
  }
  var buffer bytes.Buffer
  if err := t.WriteCSV(&buffer); err != nil {
    test.Fatal(err)
  }
  if buffer.String() != "K-mer,Count\nAAA,2\nCCC,5\n" {
    test.Errorf("unexpected csv output: %q", buffer.String())
  }
}

func TestTable4(test *testing.T) {
  filename := filepath.Join(test.TempDir(), "table.csv.gz")
  t1 := NewTable([]string{"K-mer", "Count"}, [][]string{{"ACGT", "TTTT"}, {"1", "9"}})
  if err := t1.ExportCSV(filename); err != nil {
    test.Fatal(err)
  }
  t2 := Table{}
  if err := t2.ImportCSV(filename, []string{"K-mer"}); err != nil {
    test.Fatal(err)
  }
  if t2.Length() != 2 || t2.GetColumn("K-mer")[1] != "TTTT" {
    test.Error("TestTable4 failed")
  }
  err := t2.ImportCSV(filepath.Join(test.TempDir(), "missing.csv"), []string{"K-mer"})
  var e DataLoadError
  if !errors.As(err, &e) {
    test.Errorf("expected DataLoadError, got: %v", err)
  }
}
