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
import "os"
import "strings"

import "github.com/pkg/errors"
import "github.com/shenwei356/util/pathutil"
import "golang.org/x/sys/unix"

/* -------------------------------------------------------------------------- */

// Free space in GB required in the temporary directory.
const DefaultMinFreeSpace = 10.0

/* -------------------------------------------------------------------------- */

func ensureTrailingSlash(directory string) string {
  if strings.HasSuffix(directory, "/") {
    return directory
  }
  return directory + "/"
}

// Create directory if it does not exist. The boolean result is true if the
// directory was created.
func ensureDirectory(directory string) (bool, error) {
  exists, err := pathutil.DirExists(directory)
  if err != nil {
    return false, err
  }
  if exists {
    return false, nil
  }
  if err := os.MkdirAll(directory, 0755); err != nil {
    return false, err
  }
  return true, nil
}

// Available space in GB on the file system containing path.
func FreeSpace(path string) (float64, error) {
  var stat unix.Statfs_t
  if err := unix.Statfs(path, &stat); err != nil {
    return 0, err
  }
  return float64(stat.Bavail)*float64(stat.Bsize)/(1024*1024*1024), nil
}

/* -------------------------------------------------------------------------- */

// Create the temporary directory if necessary and check that at least
// minFreeSpace GB are available. The directory is returned with a trailing
// slash.
func CheckTempDir(directory string, minFreeSpace float64) (string, bool, error) {
  directory = ensureTrailingSlash(directory)

  created, err := ensureDirectory(directory)
  if err != nil {
    return directory, false, errors.Wrapf(err, "could not create temporary directory `%s'", directory)
  }
  free, err := FreeSpace(directory)
  if err != nil {
    return directory, created, errors.Wrapf(err, "checking free space of `%s'", directory)
  }
  if free < minFreeSpace {
    return directory, created, ConfigError{
      Option: "tmp",
      Reason: fmt.Sprintf("temporary directory `%s' has insufficient space (%.2fGB available), at least %.2fGB is required",
        directory, free, minFreeSpace) }
  }
  return directory, created, nil
}

// Create the output directory if necessary. The directory is returned with
// a trailing slash.
func CheckOutputDir(directory string) (string, bool, error) {
  directory = ensureTrailingSlash(directory)

  created, err := ensureDirectory(directory)
  if err != nil {
    return directory, false, errors.Wrapf(err, "could not create output directory `%s'", directory)
  }
  return directory, created, nil
}
