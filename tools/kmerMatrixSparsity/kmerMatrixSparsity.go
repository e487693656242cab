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
import   "strings"
import   "time"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/kmersparsity"

/* -------------------------------------------------------------------------- */

type Options struct {
  Extractor    string
  Gerbil       string
  DisableGPU   bool
  MinFreeSpace float64
  Toml         bool
  Plot         string
  MySQL        string
  MySQLTable   string
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func newExtractor(options Options) KmerExtractor {
  switch strings.ToLower(options.Extractor) {
  case "gerbil":
    extractor := NewGerbilExtractor(options.Gerbil)
    extractor.DisableGPU = options.DisableGPU
    return extractor
  case "internal":
    return NewKmerCounter()
  case "none", "":
    return nil
  default:
    log.Fatal(ConfigError{Option: "extractor", Reason: fmt.Sprintf("unknown extractor `%s'", options.Extractor)})
  }
  return nil
}

func checkDirectories(config Config, options Options, tmpDir, outputDir string) (string, string) {
  tmp, created, err := CheckTempDir(tmpDir, options.MinFreeSpace)
  if created {
    PrintStderr(config, 1, "Created temporary directory: %s\n", tmp)
  }
  if err != nil {
    log.Fatalf("Error: %v", err)
  }
  if !created {
    PrintStderr(config, 1, "Temporary directory exists and found: %s\n", tmp)
  }

  out, created, err := CheckOutputDir(outputDir)
  if err != nil {
    log.Fatalf("Error: %v", err)
  }
  if created {
    PrintStderr(config, 1, "Created output directory: %s\n", out)
  } else {
    PrintStderr(config, 1, "Output directory exists and found: %s\n", out)
  }
  return tmp, out
}

func exportReport(config Config, options Options, report Report, outputDir string, result Result) {
  fmt.Println(report.String())

  filename, err := report.ExportText(outputDir)
  if err != nil {
    log.Fatalf("writing report `%s' failed: %v", filename, err)
  }
  fmt.Printf("Report saved to %s\n", filename)

  if options.Toml {
    filename = strings.TrimSuffix(filename, ".txt") + ".toml"
    PrintStderr(config, 1, "Writing summary `%s'... ", filename)
    if err := report.ExportToml(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  if options.Plot != "" {
    PrintStderr(config, 1, "Writing density plot `%s'... ", options.Plot)
    if err := ExportDensityPlot(options.Plot, result.MatchesPerGenome, result.Rows); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  if options.MySQL != "" {
    PrintStderr(config, 1, "Exporting report to MySQL table `%s'... ", options.MySQLTable)
    if err := ExportReportSQL(options.MySQL, options.MySQLTable, report); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

func kmerMatrixSparsity(config Config, options Options, genomeList, outputDir string) {
  extractor := newExtractor(options)

  t0 := time.Now()
  result, err := KmerMatrixSparsity(config, extractor, genomeList)
  if err != nil {
    log.Fatalf("Error: %v", err)
  }
  report := NewReport(config, result, time.Since(t0))

  exportReport(config, options, report, outputDir, result)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := DefaultConfig()
  options := Options{}
  opts    := getopt.New()

  optGenomeList   := opts. StringLong("genome-list",           'l', "",                  "text file containing a list of genome file paths (required)")
  optTmp          := opts. StringLong("tmp",                   't', "",                  "temporary directory with at least 10GB free space (required)")
  optKmerSize     := opts.    IntLong("kmer-size",             'k',  0,                  "size of the k-mers, between 8 and 136 (required)")
  optOutput       := opts. StringLong("output",                'o', "",                  "output directory for the report (required)")
  optMin          := opts.    IntLong("min",                    0 ,  1,                  "minimum occurrence threshold for a k-mer to be retained [default: 1]")
  optMax          := opts.    IntLong("max",                    0 ,  NoMaxThreshold,     "maximum occurrence threshold for a k-mer to be retained [default: no limit]")
  optNoNorm       := opts.   BoolLong("disable-normalization", 'd',                      "k-mers and their reverse complements are considered as different k-mers")
  optExtractor    := opts. StringLong("extractor",              0 , "none",              "k-mer extractor: none (use existing tables in tmp), gerbil, or internal [default: none]")
  optGerbil       := opts. StringLong("gerbil",                 0 , DefaultGerbilBinary, "path to the gerbil-DataFrame binary")
  optNoGPU        := opts.   BoolLong("no-gpu",                 0 ,                      "do not run gerbil in GPU mode")
  optCountColumn  := opts. StringLong("count-column",           0 , DefaultCountColumn,  "name of the count column in per-genome tables")
  optStrict       := opts.   BoolLong("strict",                 0 ,                      "fail if the unique k-mer table contains duplicates")
  optThreads      := opts.    IntLong("threads",                0 ,  1,                  "number of threads [default: 1]")
  optInterval     := opts.    IntLong("progress-interval",      0 ,  DefaultProgressInterval, "report progress every n genomes [default: 10]")
  optMinFreeSpace := opts. StringLong("min-free-space",         0 , "10",                "required free space in GB in the temporary directory [default: 10]")
  optToml         := opts.   BoolLong("toml",                   0 ,                      "also write a toml summary next to the report")
  optPlot         := opts. StringLong("plot",                   0 , "",                  "plot running density to file (pdf, png, svg)")
  optMySQL        := opts. StringLong("mysql",                  0 , "",                  "append report to a MySQL database (user:password@tcp(host:port)/database)")
  optMySQLTable   := opts. StringLong("mysql-table",            0 , DefaultReportTable,  "MySQL table name")
  optStatus       := opts.   BoolLong("status",                 0 ,                      "show a progress bar")
  optVerbose      := opts.CounterLong("verbose",               'v',                      "verbose level [-v or -vv]")
  optHelp         := opts.   BoolLong("help",                  'h',                      "print help")

  opts.SetParameters("")
  opts.Parse(os.Args)

  if *optHelp {
    opts.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(opts.Args()) != 0 || *optGenomeList == "" || *optTmp == "" || *optOutput == "" || *optKmerSize == 0 {
    opts.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if v, err := strconv.ParseFloat(*optMinFreeSpace, 64); err != nil {
    log.Fatal(ConfigError{Option: "min-free-space", Reason: err.Error()})
  } else {
    options.MinFreeSpace = v
  }
  config.KmerSize             = *optKmerSize
  config.MinThreshold         = *optMin
  config.MaxThreshold         = *optMax
  config.DisableNormalization = *optNoNorm
  config.CountColumn          = *optCountColumn
  config.StrictIndex          = *optStrict
  config.Threads              = *optThreads
  config.ProgressInterval     = *optInterval
  config.Status               = *optStatus
  config.Verbose              = *optVerbose
  options.Extractor           = *optExtractor
  options.Gerbil              = *optGerbil
  options.DisableGPU          = *optNoGPU
  options.Toml                = *optToml
  options.Plot                = *optPlot
  options.MySQL               = *optMySQL
  options.MySQLTable          = *optMySQLTable

  // validate before touching the file system
  config.TmpDir = *optTmp
  if err := config.Validate(); err != nil {
    log.Fatalf("Error: %v", err)
  }
  tmpDir, outputDir := checkDirectories(config, options, *optTmp, *optOutput)
  config.TmpDir = tmpDir

  kmerMatrixSparsity(config, options, *optGenomeList, outputDir)
}
