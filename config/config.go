/*
Package config loads conversion jobs from XML or JSON job descriptions.

BMP Filter is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package config

import (
  "bytes"
  "errors"
  "fmt"
  "io"
  "os"
  "strings"

  "github.com/InfinityTools/go-logging"

  "github.com/InfinityTools/bmpfilter/pipeline"
)

// Supported job description formats.
const (
  FormatXml   = "xml"
  FormatJson  = "json"
)

var whiteSpace = []byte{0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x20}


// ImportJob constructs a Job from the job description found in the source wrapped by the Reader object.
// The format is detected by the first non-whitespace character: '<' for XML and '{' for JSON.
func ImportJob(r io.Reader) (job *pipeline.Job, err error) {
  logging.Logln("Loading job description")
  buffer, err := io.ReadAll(r)
  if err != nil { return nil, fmt.Errorf("Job description: %v", err) }

  format, err := DetectFormat(buffer)
  if err != nil { return nil, err }

  switch format {
    case FormatXml:
      job, err = importXml(buffer)
    default:
      job, err = importJson(buffer)
  }
  if err != nil { return nil, fmt.Errorf("Job description (%s): %v", format, err) }

  if err = validateJob(job); err != nil { return nil, err }
  logging.Logf("Finished loading job description (%s, %d filters)\n", format, len(job.Filters))
  return job, nil
}

// ImportJobFile loads the job description from the given file.
func ImportJobFile(path string) (*pipeline.Job, error) {
  fin, err := os.Open(path)
  if err != nil { return nil, err }
  defer fin.Close()
  return ImportJob(fin)
}

// DetectFormat returns FormatXml or FormatJson depending on the first non-whitespace character of buffer.
func DetectFormat(buffer []byte) (string, error) {
  data := bytes.TrimLeft(buffer, string(whiteSpace))
  if len(data) == 0 { return "", errors.New("Job description: No data found") }
  switch data[0] {
    case '<':
      return FormatXml, nil
    case '{':
      return FormatJson, nil
  }
  return "", errors.New("Job description: Unrecognized format")
}


// Used internally. Ensures that mandatory fields are present.
func validateJob(job *pipeline.Job) error {
  if job.Input == "" { return errors.New("Job description: No input file specified") }
  if job.Output == "" { return errors.New("Job description: No output file specified") }
  for idx, f := range job.Filters {
    if f.Name == "" { return fmt.Errorf("Job description: Filter #%d: No name specified", idx) }
  }
  return nil
}

// Used internally. Creates a filter spec with normalized name and parameters.
func newFilterSpec(name string, params []string) pipeline.FilterSpec {
  spec := pipeline.FilterSpec{Name: strings.ToLower(strings.TrimSpace(name))}
  if len(params) > 0 {
    spec.Params = make([]string, len(params))
    for idx, param := range params {
      spec.Params[idx] = strings.TrimSpace(param)
    }
  }
  return spec
}
