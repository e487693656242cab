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

import "database/sql"
import "fmt"
import "regexp"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

const DefaultReportTable = "kmer_matrix_sparsity"

var sqlTableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

/* -------------------------------------------------------------------------- */

func reportCreateStatement(table string) string {
  return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  id INT AUTO_INCREMENT PRIMARY KEY,
  sparsity DOUBLE NOT NULL,
  nnz BIGINT NOT NULL,
  unique_kmers BIGINT NOT NULL,
  genomes BIGINT NOT NULL,
  kmer_size INT NOT NULL,
  min_threshold BIGINT NOT NULL,
  max_threshold BIGINT NOT NULL,
  disable_normalization BOOLEAN NOT NULL,
  execution_time DOUBLE NOT NULL,
  created TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`, table)
}

func reportInsertStatement(table string) string {
  return fmt.Sprintf("INSERT INTO %s (sparsity, nnz, unique_kmers, genomes, kmer_size, min_threshold, max_threshold, disable_normalization, execution_time) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)", table)
}

func (r Report) sqlValues() []interface{} {
  return []interface{}{
    r.Sparsity, r.NNZ, r.Rows, r.Cols, r.KmerSize, r.MinThreshold, r.MaxThreshold, r.DisableNormalization, r.Elapsed.Seconds() }
}

/* -------------------------------------------------------------------------- */

// Append the report as a new row to a MySQL table, which is created if it
// does not exist. The dsn has the form user:password@tcp(host:port)/database.
func ExportReportSQL(dsn, table string, r Report) error {
  if table == "" {
    table = DefaultReportTable
  }
  if !sqlTableName.MatchString(table) {
    return ConfigError{Option: "mysql-table", Reason: fmt.Sprintf("invalid table name `%s'", table)}
  }
  /* open connection */
  db, err := sql.Open("mysql", dsn)
  if err != nil {
    return err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return err
  }
  if _, err := db.Exec(reportCreateStatement(table)); err != nil {
    return err
  }
  if _, err := db.Exec(reportInsertStatement(table), r.sqlValues()...); err != nil {
    return err
  }
  return nil
}
