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

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

func TestKmerIndex1(test *testing.T) {
  index, err := ReadKmerIndex(strings.NewReader("K-mer,Count\nA,4\nB,2\nC,9\n"), "K-mer", true)
  if err != nil {
    test.Fatal(err)
  }
  if index.Length() != 3 {
    test.Error("TestKmerIndex1 failed")
  }
  for i, kmer := range []string{"A", "B", "C"} {
    if j, ok := index.Index(kmer); !ok || i != j {
      test.Errorf("k-mer `%s' has row %d, expected %d", kmer, j, i)
    }
  }
  if _, ok := index.Index("D"); ok {
    test.Error("TestKmerIndex1 failed")
  }
}

func TestKmerIndex2(test *testing.T) {
  s := "K-mer\nA\nB\nA\n"
  // silent overwrite
  index, err := ReadKmerIndex(strings.NewReader(s), "K-mer", false)
  if err != nil {
    test.Fatal(err)
  }
  if index.Length() != 3 || index.Distinct() != 2 {
    test.Error("TestKmerIndex2 failed")
  }
  if i, _ := index.Index("A"); i != 2 {
    test.Error("TestKmerIndex2 failed")
  }
  // fail fast
  _, err = ReadKmerIndex(strings.NewReader(s), "K-mer", true)
  if !errors.Is(err, ErrDuplicateKmer) {
    test.Errorf("expected duplicate error, got: %v", err)
  }
  var e DataLoadError
  if !errors.As(err, &e) {
    test.Errorf("expected DataLoadError, got: %v", err)
  }
}

func TestKmerIndex3(test *testing.T) {
  dir := test.TempDir()

  var e DataLoadError
  if _, err := ImportKmerIndex(filepath.Join(dir, "missing.csv"), "K-mer", false); !errors.As(err, &e) {
    test.Errorf("expected DataLoadError, got: %v", err)
  }
  filename := filepath.Join(dir, "unique.csv")
  if err := os.WriteFile(filename, []byte("Kmer\nA\n"), 0666); err != nil {
    test.Fatal(err)
  }
  if _, err := ImportKmerIndex(filename, "K-mer", false); !errors.As(err, &e) {
    test.Errorf("expected DataLoadError, got: %v", err)
  } else
  if e.Filename != filename {
    test.Errorf("DataLoadError has invalid file name `%s'", e.Filename)
  }
}
