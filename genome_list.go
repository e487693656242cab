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

import "bufio"
import "io"
import "strings"

import "github.com/pkg/errors"
import "github.com/shenwei356/xopen"

/* -------------------------------------------------------------------------- */

// Read a list of genome files, one path per line. Blank lines are ignored.
func ReadGenomeList(r io.Reader) ([]string, error) {
  genomes := []string{}
  scanner := bufio.NewScanner(r)
  scanner.Buffer(make([]byte, 64*1024), 1024*1024)
  for scanner.Scan() {
    if line := strings.TrimSpace(scanner.Text()); line != "" {
      genomes = append(genomes, line)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return genomes, nil
}

func ImportGenomeList(filename string) ([]string, error) {
  f, err := xopen.Ropen(filename)
  if err != nil {
    return nil, errors.Wrapf(err, "opening genome list `%s'", filename)
  }
  defer f.Close()

  genomes, err := ReadGenomeList(f)
  if err != nil {
    return nil, errors.Wrapf(err, "reading genome list `%s'", filename)
  }
  return genomes, nil
}
