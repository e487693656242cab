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
import "io"
import "os"
import "sync"

import "github.com/pbenner/kmersparsity/lib/progress"
import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

const MinKmerSize = 8
const MaxKmerSize = 136

/* -------------------------------------------------------------------------- */

type Config struct {
  KmerSize             int
  MinThreshold         int
  MaxThreshold         int
  DisableNormalization bool
  TmpDir               string
  KmerColumn           string
  CountColumn          string
  // fail if the unique k-mer table contains duplicates
  StrictIndex          bool
  Threads              int
  ProgressInterval     int
  // show a progress bar on stderr
  Status               bool
  Verbose              int
  // receives progress reports and verbose messages, nil disables output
  Logger               io.Writer
}

func DefaultConfig() Config {
  return Config{
    MinThreshold    : 1,
    MaxThreshold    : NoMaxThreshold,
    KmerColumn      : DefaultKmerColumn,
    CountColumn     : DefaultCountColumn,
    Threads         : 1,
    ProgressInterval: DefaultProgressInterval,
    Logger          : os.Stdout }
}

func (config Config) printf(level int, format string, args ...interface{}) {
  if config.Logger != nil && config.Verbose >= level {
    fmt.Fprintf(config.Logger, format, args...)
  }
}

func (config Config) Validate() error {
  if config.KmerSize < MinKmerSize || config.KmerSize > MaxKmerSize {
    return ConfigError{Option: "kmer-size",
      Reason: fmt.Sprintf("k-mer size must be an integer between %d and %d, given: %d", MinKmerSize, MaxKmerSize, config.KmerSize)}
  }
  if config.MaxThreshold <= config.MinThreshold {
    return ConfigError{Option: "max",
      Reason: fmt.Sprintf("max (%d) must be greater than min (%d)", config.MaxThreshold, config.MinThreshold)}
  }
  if config.TmpDir == "" {
    return ConfigError{Option: "tmp", Reason: "no temporary directory given"}
  }
  if config.KmerColumn == "" {
    return ConfigError{Option: "kmer-column", Reason: "column name is empty"}
  }
  return nil
}

func (config Config) ExtractorParameters() ExtractorParameters {
  return ExtractorParameters{
    KmerSize    : config.KmerSize,
    MinThreshold: config.MinThreshold,
    MaxThreshold: config.MaxThreshold,
    Normalize   : !config.DisableNormalization,
    TmpDir      : config.TmpDir }
}

/* -------------------------------------------------------------------------- */

type Result struct {
  // percentage of non-zero cells
  Sparsity         float64
  NNZ              int64
  Rows             int
  Cols             int
  MatchesPerGenome []int
}

/* -------------------------------------------------------------------------- */

// Compute the sparsity of the k-mer by genome matrix for all genomes listed
// in file genomeList. If extractor is nil, the unique k-mer table and the
// per-genome tables must already exist in the temporary directory. The
// first error aborts the computation.
func KmerMatrixSparsity(config Config, extractor KmerExtractor, genomeList string) (Result, error) {
  if err := config.Validate(); err != nil {
    return Result{}, err
  }
  genomes, err := ImportGenomeList(genomeList)
  if err != nil {
    return Result{}, err
  }
  filename := UniqueKmersFilename(config.TmpDir, config.KmerSize, config.MinThreshold, config.MaxThreshold, config.DisableNormalization)

  if extractor != nil {
    config.printf(1, "Extracting unique k-mers of %d genomes... ", len(genomes))
    if err := extractor.ExtractUniqueSet(absPath(genomeList), filename, config.ExtractorParameters()); err != nil {
      config.printf(1, "failed\n")
      return Result{}, err
    }
    config.printf(1, "done\n")
    config.printf(1, "Unique k-mers successfully extracted and stored at: %s\n", filename)
  }
  config.printf(1, "Reading unique k-mers from `%s'... ", filename)
  index, err := ImportKmerIndex(filename, config.KmerColumn, config.StrictIndex)
  if err != nil {
    config.printf(1, "failed\n")
    return Result{}, err
  }
  config.printf(1, "done\n")
  if index.Distinct() != index.Length() {
    config.printf(1, "Warning: unique k-mer table contains %d duplicated rows\n", index.Length()-index.Distinct())
  }
  return IndexSparsity(config, extractor, index, genomes)
}

// Join the k-mer table of each genome against the index and accumulate the
// number of non-zero cells. Genome i is read from GenomeKmersFilename(TmpDir, i),
// which is first created by the extractor if it is not nil.
func IndexSparsity(config Config, extractor KmerExtractor, index KmerIndex, genomes []string) (Result, error) {
  accumulator := SparsityAccumulator{}
  reporter    := NewProgressReporter(config.ProgressInterval, index.Length(), config.Logger)
  matches     := make([]int, len(genomes))
  bar         := progress.New(len(genomes), 100)

  kmerColumn := config.KmerColumn
  if kmerColumn == "" {
    kmerColumn = DefaultKmerColumn
  }
  // number of genomes finished so far, which is the genome index in the
  // sequential case
  done  := 0
  mutex := sync.Mutex{}

  processGenome := func(i int) error {
    filename := GenomeKmersFilename(config.TmpDir, i)
    if extractor != nil {
      if err := extractor.ExtractGenomeCounts(genomes[i], filename, config.ExtractorParameters()); err != nil {
        return err
      }
    }
    counts, err := ImportGenomeKmerCounts(filename, kmerColumn, config.CountColumn)
    if err != nil {
      return err
    }
    n := CountMatches(index, counts)

    mutex.Lock()
    defer mutex.Unlock()
    matches[i] = n
    accumulator.Add(n)
    reporter.Report(done, accumulator.NNZ())
    done++
    if config.Status {
      bar.PrintStderr(done)
    }
    return nil
  }
  if config.Threads <= 1 {
    for i := range genomes {
      if err := processGenome(i); err != nil {
        return Result{}, err
      }
    }
  } else {
    pool := threadpool.New(config.Threads, 100*config.Threads)
    if err := pool.RangeJob(0, len(genomes), func(i int, pool threadpool.ThreadPool, erf func() error) error {
      if erf() != nil {
        return nil
      }
      return processGenome(i)
    }); err != nil {
      return Result{}, err
    }
  }
  sparsity, err := accumulator.Finalize(index.Length(), len(genomes))
  if err != nil {
    return Result{}, err
  }
  return Result{
    Sparsity        : sparsity,
    NNZ             : accumulator.NNZ(),
    Rows            : index.Length(),
    Cols            : len(genomes),
    MatchesPerGenome: matches }, nil
}
