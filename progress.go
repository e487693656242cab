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

/* -------------------------------------------------------------------------- */

const DefaultProgressInterval = 10

/* -------------------------------------------------------------------------- */

// Periodically reports the number of non-zero cells and the density of the
// part of the matrix that has been processed so far.
type ProgressReporter struct {
  Interval    int
  UniqueKmers int
  Writer      io.Writer
}

func NewProgressReporter(interval, uniqueKmers int, writer io.Writer) ProgressReporter {
  if interval <= 0 {
    interval = DefaultProgressInterval
  }
  return ProgressReporter{Interval: interval, UniqueKmers: uniqueKmers, Writer: writer}
}

// Report is called after genome i (0-based) has been processed. Nothing is
// reported for i == 0 or if i is not a multiple of the interval. The density
// uses the i+1 genomes processed so far as number of columns.
func (obj ProgressReporter) Report(i int, nnz int64) (float64, bool) {
  interval := obj.Interval
  if interval <= 0 {
    interval = DefaultProgressInterval
  }
  if i == 0 || i % interval != 0 {
    return 0, false
  }
  density, err := Density(nnz, obj.UniqueKmers, i+1)
  if err != nil {
    return 0, false
  }
  if obj.Writer != nil {
    fmt.Fprintf(obj.Writer, "Processed %d genomes :\n", i)
    fmt.Fprintf(obj.Writer, "Number of non-zero elements so far %d\n", nnz)
    fmt.Fprintf(obj.Writer, "Current density is : %v%%\n", density)
  }
  return density, true
}
