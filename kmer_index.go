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

import "io"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

const DefaultKmerColumn  = "K-mer"
const DefaultCountColumn = "Count"

/* -------------------------------------------------------------------------- */

// Global index of all unique k-mers. The row index of a k-mer is its
// (0-based) position in the source table. The index is read-only once
// loaded and may be shared between threads.
type KmerIndex struct {
  Kmers []string
  index map[string]int
}

/* constructor
 * -------------------------------------------------------------------------- */

// If strict is false, a duplicated k-mer silently maps to the position of
// its last occurrence while Length() still counts every row.
func NewKmerIndex(kmers []string, strict bool) (KmerIndex, error) {
  index := make(map[string]int, len(kmers))
  for i, kmer := range kmers {
    if j, ok := index[kmer]; ok && strict {
      return KmerIndex{}, errors.Wrapf(ErrDuplicateKmer, "`%s' at rows %d and %d", kmer, j, i)
    }
    index[kmer] = i
  }
  return KmerIndex{Kmers: kmers, index: index}, nil
}

/* -------------------------------------------------------------------------- */

// Number of rows of the k-mer matrix.
func (obj KmerIndex) Length() int {
  return len(obj.Kmers)
}

// Number of distinct k-mers, which is smaller than Length() only if the
// source table contained duplicates.
func (obj KmerIndex) Distinct() int {
  return len(obj.index)
}

func (obj KmerIndex) Index(kmer string) (int, bool) {
  i, ok := obj.index[kmer]
  return i, ok
}

/* i/o
 * -------------------------------------------------------------------------- */

func ReadKmerIndex(r io.Reader, column string, strict bool) (KmerIndex, error) {
  t := Table{}
  if err := t.ReadCSV(r, []string{column}); err != nil {
    return KmerIndex{}, newDataLoadError("", err)
  }
  index, err := NewKmerIndex(t.GetColumn(column), strict)
  if err != nil {
    return KmerIndex{}, newDataLoadError("", err)
  }
  return index, nil
}

func ImportKmerIndex(filename, column string, strict bool) (KmerIndex, error) {
  t := Table{}
  if err := t.ImportCSV(filename, []string{column}); err != nil {
    return KmerIndex{}, err
  }
  index, err := NewKmerIndex(t.GetColumn(column), strict)
  if err != nil {
    return KmerIndex{}, newDataLoadError(filename, err)
  }
  return index, nil
}
