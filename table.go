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

import "encoding/csv"
import "fmt"
import "io"
import "strings"

import "github.com/pkg/errors"
import "github.com/shenwei356/xopen"

/* -------------------------------------------------------------------------- */

// Column oriented view of a comma separated table. Only the columns
// requested at load time are kept.
type Table struct {
  ColNames []string
  Columns  [][]string
  rows     int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewTable(names []string, columns [][]string) Table {
  if len(names) != len(columns) {
    panic("NewTable(): invalid parameters!")
  }
  t := Table{}
  for i := 0; i < len(names); i++ {
    if i == 0 {
      t.rows = len(columns[i])
    } else
    if len(columns[i]) != t.rows {
      panic("NewTable(): columns have different lengths!")
    }
    t.ColNames = append(t.ColNames, names[i])
    t.Columns  = append(t.Columns,  columns[i])
  }
  return t
}

/* -------------------------------------------------------------------------- */

// Number of rows.
func (t Table) Length() int {
  return t.rows
}

// Number of columns.
func (t Table) ColLength() int {
  return len(t.ColNames)
}

func (t Table) GetColumn(name string) []string {
  for i, n := range t.ColNames {
    if n == name {
      return t.Columns[i]
    }
  }
  return nil
}

// Returns a new table with a subset of the columns. The column data
// is shared with the original table.
func (t Table) Project(names ...string) (Table, error) {
  r := Table{rows: t.rows}
  for _, name := range names {
    column := t.GetColumn(name)
    if column == nil {
      return Table{}, fmt.Errorf("column `%s' not found", name)
    }
    r.ColNames = append(r.ColNames, name)
    r.Columns  = append(r.Columns,  column)
  }
  return r, nil
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read a csv table with header. All columns in names must be present
// in the header, other columns are ignored.
func (t *Table) ReadCSV(r io.Reader, names []string) error {
  reader := csv.NewReader(r)
  reader.FieldsPerRecord = -1
  reader.ReuseRecord     = true

  header, err := reader.Read()
  if err == io.EOF {
    return errors.New("table is empty (header missing)")
  }
  if err != nil {
    return errors.Wrap(err, "reading header")
  }
  idx := make([]int, len(names))
  for i, name := range names {
    idx[i] = -1
    for j, field := range header {
      field = strings.TrimSpace(strings.TrimPrefix(field, "\ufeff"))
      if field == name {
        idx[i] = j; break
      }
    }
    if idx[i] == -1 {
      return fmt.Errorf("column `%s' not found in header", name)
    }
  }
  columns := make([][]string, len(names))
  rows    := 0
  for {
    record, err := reader.Read()
    if err == io.EOF {
      break
    }
    if err != nil {
      return errors.Wrapf(err, "reading row %d", rows+1)
    }
    for i, j := range idx {
      if j >= len(record) {
        line, _ := reader.FieldPos(0)
        return fmt.Errorf("line `%d' has no column `%s'", line, names[i])
      }
      columns[i] = append(columns[i], strings.TrimSpace(record[j]))
    }
    rows++
  }
  t.ColNames = append([]string{}, names...)
  t.Columns  = columns
  t.rows     = rows
  return nil
}

// Import a (possibly compressed) csv table. Any failure is reported as
// DataLoadError.
func (t *Table) ImportCSV(filename string, names []string) error {
  f, err := xopen.Ropen(filename)
  if err != nil {
    return newDataLoadError(filename, err)
  }
  defer f.Close()

  if err := t.ReadCSV(f, names); err != nil {
    return newDataLoadError(filename, err)
  }
  return nil
}

func (t Table) WriteCSV(w io.Writer) error {
  writer := csv.NewWriter(w)
  if err := writer.Write(t.ColNames); err != nil {
    return err
  }
  record := make([]string, len(t.ColNames))
  for i := 0; i < t.rows; i++ {
    for j := range t.Columns {
      record[j] = t.Columns[j][i]
    }
    if err := writer.Write(record); err != nil {
      return err
    }
  }
  writer.Flush()
  return writer.Error()
}

func (t Table) ExportCSV(filename string) error {
  f, err := xopen.Wopen(filename)
  if err != nil {
    return err
  }
  if err := t.WriteCSV(f); err != nil {
    f.Close()
    return err
  }
  return f.Close()
}
