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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "strconv"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/kmersparsity"

/* -------------------------------------------------------------------------- */

type Options struct {
  List      bool
  Normalize bool
  Min       int
  Max       int
  Verbose   int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Options, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

func countFasta(config Options, counter KmerCounter, counts map[string]int, filename string, k int) {
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := counter.CountFasta(counts, filename, k, config.Normalize); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func writeTable(config Options, table Table, filename string) {
  if filename == "" {
    if err := table.WriteCSV(os.Stdout); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing table `%s'... ", filename)
    if err := table.ExportCSV(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func kmerTable(config Options, k int, filenameIn, filenameOut string) {
  counter := NewKmerCounter()
  counts  := make(map[string]int)

  if config.List {
    genomes, err := ImportGenomeList(filenameIn)
    if err != nil {
      log.Fatal(err)
    }
    for _, genome := range genomes {
      countFasta(config, counter, counts, genome, k)
    }
  } else {
    countFasta(config, counter, counts, filenameIn, k)
  }
  table := counter.Table(counts, config.Min, config.Max)
  PrintStderr(config, 1, "Retained %d of %d k-mers\n", table.Length(), len(counts))

  writeTable(config, table, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Options{}
  options := getopt.New()

  optList    := options.   BoolLong("list",                  0 ,                 "input is a file listing genomes, count k-mers over all genomes")
  optMin     := options.    IntLong("min",                   0 , 1,              "minimum number of occurrences [default: 1]")
  optMax     := options.    IntLong("max",                   0 , NoMaxThreshold, "maximum number of occurrences [default: no limit]")
  optNoNorm  := options.   BoolLong("disable-normalization", 'd',                "do not fold k-mers and their reverse complements")
  optVerbose := options.CounterLong("verbose",               'v',                "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",                  'h',                "print help")

  options.SetParameters("<K> <INPUT.fasta|GENOMES.txt> [OUTPUT.csv]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 && len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.List      = *optList
  config.Normalize = !*optNoNorm
  config.Min       = *optMin
  config.Max       = *optMax
  config.Verbose   = *optVerbose

  k, err := strconv.ParseInt(options.Args()[0], 10, 64); if err != nil || k < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if config.Max < config.Min {
    log.Fatal(ConfigError{Option: "max", Reason: "must not be smaller than min"})
  }
  filenameIn  := options.Args()[1]
  filenameOut := ""
  if len(options.Args()) == 3 {
    filenameOut = options.Args()[2]
  }
  kmerTable(config, int(k), filenameIn, filenameOut)
}
