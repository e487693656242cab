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
import "strings"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// The ratio nnz/(rows*cols) is undefined if either the unique k-mer index
// or the genome list is empty.
var ErrDenominatorZero = errors.New("matrix has zero rows or columns")

var ErrDuplicateKmer = errors.New("k-mer occurred multiple times")

/* -------------------------------------------------------------------------- */

// Invalid command line parameters or configuration.
type ConfigError struct {
  Option string
  Reason string
}

func (e ConfigError) Error() string {
  return fmt.Sprintf("invalid option `%s': %s", e.Option, e.Reason)
}

/* -------------------------------------------------------------------------- */

// A k-mer table is missing, unreadable or malformed.
type DataLoadError struct {
  Filename string
  Err      error
}

func (e DataLoadError) Error() string {
  if e.Filename == "" {
    return fmt.Sprintf("loading table failed: %v", e.Err)
  }
  return fmt.Sprintf("loading table `%s' failed: %v", e.Filename, e.Err)
}

func (e DataLoadError) Unwrap() error {
  return e.Err
}

func newDataLoadError(filename string, err error) error {
  if e, ok := err.(DataLoadError); ok {
    if e.Filename == "" {
      e.Filename = filename
    }
    return e
  }
  return DataLoadError{Filename: filename, Err: err}
}

/* -------------------------------------------------------------------------- */

// The external k-mer extractor terminated with a non-zero exit status.
type ExtractionError struct {
  Command []string
  Status  int
  Stdout  string
  Stderr  string
  Err     error
}

func (e ExtractionError) Error() string {
  var b strings.Builder
  fmt.Fprintf(&b, "extraction `%s' failed with return code %d", strings.Join(e.Command, " "), e.Status)
  if e.Err != nil {
    fmt.Fprintf(&b, ": %v", e.Err)
  }
  if s := strings.TrimSpace(e.Stdout); s != "" {
    fmt.Fprintf(&b, "\nStandard Output:\n%s", s)
  }
  if s := strings.TrimSpace(e.Stderr); s != "" {
    fmt.Fprintf(&b, "\nStandard Error:\n%s", s)
  }
  return b.String()
}

func (e ExtractionError) Unwrap() error {
  return e.Err
}
