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

import "sync/atomic"

import "gonum.org/v1/gonum/floats/scalar"

/* -------------------------------------------------------------------------- */

// Round a percentage to two decimal digits, ties are rounded away from zero.
func RoundPercent(x float64) float64 {
  return scalar.Round(x, 2)
}

// Percentage of non-zero cells in a rows x cols matrix.
func Density(nnz int64, rows, cols int) (float64, error) {
  size := int64(rows)*int64(cols)
  if size == 0 {
    return 0, ErrDenominatorZero
  }
  return RoundPercent(100*float64(nnz)/float64(size)), nil
}

/* -------------------------------------------------------------------------- */

// Running number of non-zero matrix cells. The counter is only ever
// incremented and may be updated concurrently.
type SparsityAccumulator struct {
  nnz int64
}

func (obj *SparsityAccumulator) Add(n int) {
  if n <= 0 {
    return
  }
  atomic.AddInt64(&obj.nnz, int64(n))
}

func (obj *SparsityAccumulator) NNZ() int64 {
  return atomic.LoadInt64(&obj.nnz)
}

func (obj *SparsityAccumulator) Finalize(rows, cols int) (float64, error) {
  return Density(obj.NNZ(), rows, cols)
}
