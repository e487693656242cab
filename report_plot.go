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

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/plotutil"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

// Density of the matrix restricted to the first j genomes, for j = 1..n.
func RunningDensity(matches []int, rows int) ([]float64, error) {
  r   := make([]float64, len(matches))
  nnz := int64(0)
  for j, m := range matches {
    nnz += int64(m)
    d, err := Density(nnz, rows, j+1)
    if err != nil {
      return nil, err
    }
    r[j] = d
  }
  return r, nil
}

// Plot the running density against the number of processed genomes. The
// file format is determined by the extension of filename.
func ExportDensityPlot(filename string, matches []int, rows int) error {
  y, err := RunningDensity(matches, rows)
  if err != nil {
    return err
  }
  xy := make(plotter.XYs, len(y))
  for i := range y {
    xy[i].X = float64(i+1)
    xy[i].Y = y[i]
  }
  p := plot.New()
  p.Title.Text   = fmt.Sprintf("k-mer matrix density (%d unique k-mers)", rows)
  p.X.Label.Text = "genomes"
  p.Y.Label.Text = "density [%]"

  if err := plotutil.AddLinePoints(p, "density", xy); err != nil {
    return err
  }
  return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
