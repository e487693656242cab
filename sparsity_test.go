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

import "sync"
import "testing"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

func TestSparsity1(test *testing.T) {
  acc := SparsityAccumulator{}
  acc.Add(20)
  acc.Add(30)
  acc.Add(0)
  acc.Add(-4)
  if acc.NNZ() != 50 {
    test.Errorf("unexpected nnz: %d", acc.NNZ())
  }
  if r, err := acc.Finalize(100, 10); err != nil || r != 5.0 {
    test.Errorf("TestSparsity1 failed: %v %v", r, err)
  }
}

func TestSparsity2(test *testing.T) {
  acc := SparsityAccumulator{}
  if _, err := acc.Finalize(0, 10); !errors.Is(err, ErrDenominatorZero) {
    test.Error("TestSparsity2 failed")
  }
  if _, err := acc.Finalize(10, 0); !errors.Is(err, ErrDenominatorZero) {
    test.Error("TestSparsity2 failed")
  }
  // product exceeds 32 bits
  if r, err := Density(3, 100000, 100000); err != nil || r != 0.0 {
    test.Error("TestSparsity2 failed")
  }
}

func TestSparsity3(test *testing.T) {
  if r := RoundPercent(12.345678); r != 12.35 {
    test.Errorf("TestSparsity3 failed: %v", r)
  }
  if r := RoundPercent(0.125); r != 0.13 {
    test.Errorf("TestSparsity3 failed: %v", r)
  }
  if r, _ := Density(1, 3, 1); r != 33.33 {
    test.Errorf("TestSparsity3 failed: %v", r)
  }
  if r, _ := Density(6, 3, 2); r != 100.0 {
    test.Errorf("TestSparsity3 failed: %v", r)
  }
}

func TestSparsity4(test *testing.T) {
  acc := SparsityAccumulator{}
  wg  := sync.WaitGroup{}
  for i := 0; i < 100; i++ {
    wg.Add(1)
    go func() {
      defer wg.Done()
      for j := 0; j < 100; j++ {
        acc.Add(1)
      }
    }()
  }
  wg.Wait()
  if acc.NNZ() != 10000 {
    test.Error("TestSparsity4 failed")
  }
}
