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
import "path/filepath"

/* -------------------------------------------------------------------------- */

// Maximum occurrence threshold used when no limit is given.
const NoMaxThreshold = 1000000000

/* -------------------------------------------------------------------------- */

type ExtractorParameters struct {
  KmerSize     int
  MinThreshold int
  MaxThreshold int
  // fold k-mers and their reverse complements
  Normalize    bool
  TmpDir       string
}

// Parameters for per-genome tables. These must not be filtered, but k-mer
// size and normalization have to agree with the unique set.
func (p ExtractorParameters) PerGenome() ExtractorParameters {
  p.MinThreshold = 1
  p.MaxThreshold = NoMaxThreshold
  return p
}

/* -------------------------------------------------------------------------- */

// A KmerExtractor writes csv tables with a k-mer and a count column.
type KmerExtractor interface {
  // Extract all k-mers of the genomes listed in file genomeList whose
  // total number of occurrences is within the thresholds.
  ExtractUniqueSet(genomeList, output string, params ExtractorParameters) error
  // Extract k-mer counts of a single genome.
  ExtractGenomeCounts(genome, output string, params ExtractorParameters) error
}

/* file names
 * -------------------------------------------------------------------------- */

func UniqueKmersFilename(tmpDir string, kmerSize, minThreshold, maxThreshold int, disableNormalization bool) string {
  suffix := "no_d"
  if disableNormalization {
    suffix = "d"
  }
  name := fmt.Sprintf("temporary_set_of_all_unique_kmers_min%d_max%d_kmer%d_%s.csv",
    minThreshold, maxThreshold, kmerSize, suffix)
  return filepath.Join(absPath(tmpDir), name)
}

func GenomeKmersFilename(tmpDir string, i int) string {
  return filepath.Join(tmpDir, fmt.Sprintf("temporary_output_genome_%d.csv", i))
}

func absPath(path string) string {
  if r, err := filepath.Abs(path); err == nil {
    return r
  }
  return path
}
