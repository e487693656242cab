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

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestProgress1(test *testing.T) {
  p := New(10, 100)
  if p.K != 1 {
    test.Error("TestProgress1 failed")
  }
  s := p.Exec(5)
  if !strings.Contains(s, " 50.00% (5/10)") || strings.HasSuffix(s, "\n") {
    test.Errorf("unexpected progress bar: %q", s)
  }
  if s := p.Exec(10); !strings.HasSuffix(s, "100.00% (10/10)\n") {
    test.Errorf("unexpected progress bar: %q", s)
  }
}

func TestProgress2(test *testing.T) {
  var buffer bytes.Buffer
  p := New(1000, 10)
  if p.K != 100 {
    test.Error("TestProgress2 failed")
  }
  for i := 0; i <= 1000; i++ {
    p.Fprint(&buffer, i)
  }
  // 0, 100, ..., 1000
  if n := strings.Count(buffer.String(), "|"); n != 2*11 {
    test.Errorf("progress bar printed %d times", n/2)
  }
}
