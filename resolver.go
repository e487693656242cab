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

// Join the k-mers of a single genome with the global index and return the
// row index of every matched k-mer, in order of first appearance in the
// genome table. K-mers absent from the index are dropped and k-mers that
// occur repeatedly in the genome table are reported only once. The count
// itself is irrelevant, every matched k-mer is one non-zero matrix cell.
func ResolveRows(index KmerIndex, counts GenomeKmerCounts) []int {
  rows := make([]int, 0, counts.Length())
  seen := make(map[int]struct{}, counts.Length())
  for _, kmer := range counts.Kmers {
    i, ok := index.Index(kmer)
    if !ok {
      continue
    }
    if _, ok := seen[i]; ok {
      continue
    }
    seen[i] = struct{}{}
    rows    = append(rows, i)
  }
  return rows
}

// Number of non-zero cells contributed by a single genome.
func CountMatches(index KmerIndex, counts GenomeKmerCounts) int {
  return len(ResolveRows(index, counts))
}
