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
import "sort"
import "strconv"

import "github.com/biogo/biogo/alphabet"
import "github.com/biogo/biogo/io/seqio"
import "github.com/biogo/biogo/io/seqio/fasta"
import "github.com/biogo/biogo/seq/linear"
import "github.com/pkg/errors"
import "github.com/shenwei356/xopen"

/* -------------------------------------------------------------------------- */

// In-process k-mer extraction. The output tables have the same format as
// those of gerbil (columns K-mer and Count) and are sorted by k-mer.
type KmerCounter struct {
  KmerColumn  string
  CountColumn string
}

func NewKmerCounter() KmerCounter {
  return KmerCounter{KmerColumn: DefaultKmerColumn, CountColumn: DefaultCountColumn}
}

/* -------------------------------------------------------------------------- */

// Count all k-mers of a sequence. Windows that contain letters other than
// A, C, G, or T are skipped.
func CountSequence(counts map[string]int, sequence []byte, k int, normalize bool) {
  if k <= 0 || len(sequence) < k {
    return
  }
  s   := make([]byte, len(sequence))
  tmp := make([]byte, k)
  for i := range sequence {
    s[i] = toUpper(sequence[i])
  }
  // number of valid nucleotides preceding and including position i
  valid := 0
  for i := 0; i < len(s); i++ {
    if !isNucleotide(s[i]) {
      valid = 0; continue
    }
    valid++
    if valid < k {
      continue
    }
    kmer := s[i-k+1:i+1]
    if normalize {
      kmer = canonicalKmer(kmer, tmp)
    }
    counts[string(kmer)]++
  }
}

// Count k-mers of all sequences in a (possibly compressed) fasta file.
func (obj KmerCounter) CountFasta(counts map[string]int, filename string, k int, normalize bool) error {
  f, err := xopen.Ropen(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  buf := []byte{}
  sc  := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
  for sc.Next() {
    s, ok := sc.Seq().(*linear.Seq)
    if !ok {
      return fmt.Errorf("unexpected sequence type in `%s'", filename)
    }
    buf = buf[:0]
    for _, l := range s.Seq {
      buf = append(buf, byte(l))
    }
    CountSequence(counts, buf, k, normalize)
  }
  return sc.Error()
}

/* -------------------------------------------------------------------------- */

func (obj KmerCounter) columns() (string, string) {
  kmerColumn  := obj.KmerColumn
  countColumn := obj.CountColumn
  if kmerColumn == "" {
    kmerColumn = DefaultKmerColumn
  }
  if countColumn == "" {
    countColumn = DefaultCountColumn
  }
  return kmerColumn, countColumn
}

// Convert k-mer counts into a table, keeping only k-mers with
// min <= count <= max.
func (obj KmerCounter) Table(counts map[string]int, min, max int) Table {
  kmers := make([]string, 0, len(counts))
  for kmer, c := range counts {
    if c >= min && c <= max {
      kmers = append(kmers, kmer)
    }
  }
  sort.Strings(kmers)
  values := make([]string, len(kmers))
  for i, kmer := range kmers {
    values[i] = strconv.Itoa(counts[kmer])
  }
  kmerColumn, countColumn := obj.columns()
  return NewTable([]string{kmerColumn, countColumn}, [][]string{kmers, values})
}

func (obj KmerCounter) ExtractUniqueSet(genomeList, output string, params ExtractorParameters) error {
  genomes, err := ImportGenomeList(genomeList)
  if err != nil {
    return obj.failed(genomeList, err)
  }
  counts := make(map[string]int)
  for _, genome := range genomes {
    if err := obj.CountFasta(counts, genome, params.KmerSize, params.Normalize); err != nil {
      return obj.failed(genome, err)
    }
  }
  if err := obj.Table(counts, params.MinThreshold, params.MaxThreshold).ExportCSV(output); err != nil {
    return obj.failed(genomeList, errors.Wrapf(err, "writing `%s'", output))
  }
  return nil
}

func (obj KmerCounter) ExtractGenomeCounts(genome, output string, params ExtractorParameters) error {
  params  = params.PerGenome()
  counts := make(map[string]int)
  if err := obj.CountFasta(counts, genome, params.KmerSize, params.Normalize); err != nil {
    return obj.failed(genome, err)
  }
  if err := obj.Table(counts, params.MinThreshold, params.MaxThreshold).ExportCSV(output); err != nil {
    return obj.failed(genome, errors.Wrapf(err, "writing `%s'", output))
  }
  return nil
}

func (obj KmerCounter) failed(input string, err error) error {
  return ExtractionError{Command: []string{"count-kmers", input}, Status: -1, Err: err}
}
