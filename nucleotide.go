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

var complementTable = func() [256]byte {
  var t [256]byte
  for i := range t {
    t[i] = 'N'
  }
  t['A'], t['C'], t['G'], t['T'] = 'T', 'G', 'C', 'A'
  t['a'], t['c'], t['g'], t['t'] = 't', 'g', 'c', 'a'
  return t
}()

func isNucleotide(c byte) bool {
  switch c {
  case 'A', 'C', 'G', 'T': return true
  default: return false
  }
}

func toUpper(c byte) byte {
  if c >= 'a' && c <= 'z' {
    return c - 'a' + 'A'
  }
  return c
}

/* -------------------------------------------------------------------------- */

// Write the reverse complement of s into dst, which must have the same length.
func reverseComplement(dst, s []byte) []byte {
  n := len(s)
  for i := 0; i < n; i++ {
    dst[n-i-1] = complementTable[s[i]]
  }
  return dst
}

// Canonical representation of a k-mer, which is the lexicographically
// smaller one of the k-mer and its reverse complement. The buffer tmp must
// have the same length as kmer.
func canonicalKmer(kmer, tmp []byte) []byte {
  rc := reverseComplement(tmp, kmer)
  for i := range kmer {
    if kmer[i] < rc[i] {
      return kmer
    }
    if kmer[i] > rc[i] {
      return rc
    }
  }
  return kmer
}
