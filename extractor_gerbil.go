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

import "bytes"
import "os"
import "os/exec"
import "strconv"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

const DefaultGerbilBinary = "./include/gerbil-DataFrame/build/gerbil"

/* -------------------------------------------------------------------------- */

// Extract k-mers with the external gerbil-DataFrame tool, which writes its
// results as csv tables.
type GerbilExtractor struct {
  Binary     string
  // do not pass -g (GPU mode) to gerbil
  DisableGPU bool
}

func NewGerbilExtractor(binary string) GerbilExtractor {
  if binary == "" {
    binary = DefaultGerbilBinary
  }
  return GerbilExtractor{Binary: binary}
}

/* -------------------------------------------------------------------------- */

// Command line arguments for extracting k-mers from input, which is either
// a single fasta file or a file listing genomes.
func (obj GerbilExtractor) Args(input, output string, params ExtractorParameters) []string {
  args := []string{
    "-k", strconv.Itoa(params.KmerSize),
    "-o", "csv",
    "-l", strconv.Itoa(params.MinThreshold),
    "-z", strconv.Itoa(params.MaxThreshold) }
  if !obj.DisableGPU {
    args = append(args, "-g")
  }
  if !params.Normalize {
    args = append(args, "-d")
  }
  return append(args, input, params.TmpDir, output)
}

func (obj GerbilExtractor) ExtractUniqueSet(genomeList, output string, params ExtractorParameters) error {
  return obj.run(obj.Args(genomeList, output, params), output)
}

func (obj GerbilExtractor) ExtractGenomeCounts(genome, output string, params ExtractorParameters) error {
  return obj.run(obj.Args(genome, output, params.PerGenome()), output)
}

func (obj GerbilExtractor) run(args []string, output string) error {
  var stdout, stderr bytes.Buffer

  cmd := exec.Command(obj.Binary, args...)
  cmd.Stdout = &stdout
  cmd.Stderr = &stderr

  if err := cmd.Run(); err != nil {
    status := -1
    if e, ok := err.(*exec.ExitError); ok {
      status = e.ExitCode()
    }
    return ExtractionError{
      Command: append([]string{obj.Binary}, args...),
      Status : status,
      Stdout : stdout.String(),
      Stderr : stderr.String(),
      Err    : err }
  }
  // gerbil may exit normally without writing anything
  if _, err := os.Stat(output); err != nil {
    return ExtractionError{
      Command: append([]string{obj.Binary}, args...),
      Stdout : stdout.String(),
      Stderr : stderr.String(),
      Err    : errors.Wrap(err, "no output table written") }
  }
  return nil
}
