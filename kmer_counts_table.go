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
import "strconv"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// K-mer occurrences of a single genome as produced by the extractor. Counts
// are taken as-is, rows with zero or negative counts are still present.
type GenomeKmerCounts struct {
  Kmers  []string
  Counts []int
}

/* -------------------------------------------------------------------------- */

func (obj GenomeKmerCounts) Length() int {
  return len(obj.Kmers)
}

/* i/o
 * -------------------------------------------------------------------------- */

func newGenomeKmerCounts(t Table, kmerColumn, countColumn string) (GenomeKmerCounts, error) {
  kmers  := t.GetColumn(kmerColumn)
  counts := make([]int, len(kmers))
  if countColumn == "" {
    for i := range counts {
      counts[i] = 1
    }
    return GenomeKmerCounts{Kmers: kmers, Counts: counts}, nil
  }
  for i, s := range t.GetColumn(countColumn) {
    c, err := strconv.ParseInt(s, 10, 64)
    if err != nil {
      return GenomeKmerCounts{}, errors.Wrapf(err, "parsing count of k-mer `%s' at row %d", kmers[i], i+1)
    }
    counts[i] = int(c)
  }
  return GenomeKmerCounts{Kmers: kmers, Counts: counts}, nil
}

func columnNames(kmerColumn, countColumn string) []string {
  if countColumn == "" {
    return []string{kmerColumn}
  }
  return []string{kmerColumn, countColumn}
}

// Read k-mer counts from a csv table. If countColumn is empty, only the
// k-mer column is required and all counts are set to one.
func ReadGenomeKmerCounts(r io.Reader, kmerColumn, countColumn string) (GenomeKmerCounts, error) {
  t := Table{}
  if err := t.ReadCSV(r, columnNames(kmerColumn, countColumn)); err != nil {
    return GenomeKmerCounts{}, newDataLoadError("", err)
  }
  counts, err := newGenomeKmerCounts(t, kmerColumn, countColumn)
  if err != nil {
    return GenomeKmerCounts{}, newDataLoadError("", err)
  }
  return counts, nil
}

func ImportGenomeKmerCounts(filename, kmerColumn, countColumn string) (GenomeKmerCounts, error) {
  t := Table{}
  if err := t.ImportCSV(filename, columnNames(kmerColumn, countColumn)); err != nil {
    return GenomeKmerCounts{}, err
  }
  counts, err := newGenomeKmerCounts(t, kmerColumn, countColumn)
  if err != nil {
    return GenomeKmerCounts{}, newDataLoadError(filename, err)
  }
  return counts, nil
}
