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

import "testing"

/* -------------------------------------------------------------------------- */

func TestResolver1(test *testing.T) {
  index, _ := NewKmerIndex([]string{"A", "B", "C", "D"}, true)
  counts   := GenomeKmerCounts{
    Kmers : []string{"C", "X", "A", "Y", "C"},
    Counts: []int   { 5,   1,   0,   2,   5 } }

  rows := ResolveRows(index, counts)
  if len(rows) != 2 || rows[0] != 2 || rows[1] != 0 {
    test.Errorf("unexpected rows: %v", rows)
  }
  // joining twice yields the same result
  if n := CountMatches(index, counts); n != len(rows) {
    test.Error("TestResolver1 failed")
  }
}

func TestResolver2(test *testing.T) {
  index, _ := NewKmerIndex([]string{"A", "B"}, true)
  if n := CountMatches(index, GenomeKmerCounts{}); n != 0 {
    test.Error("TestResolver2 failed")
  }
  counts := GenomeKmerCounts{Kmers: []string{"X", "Y"}, Counts: []int{1, 1}}
  if n := CountMatches(index, counts); n != 0 {
    test.Error("TestResolver2 failed")
  }
  if n := CountMatches(KmerIndex{}, counts); n != 0 {
    test.Error("TestResolver2 failed")
  }
}
