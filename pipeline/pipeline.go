/*
Package pipeline decodes a BMP file, applies a chain of filters and writes the result to another BMP file.

Progress is reported through the go-logging package: start and end of a job at INFO level, every filter step at
LOG level.

BMP Filter is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package pipeline

import (
  "errors"
  "fmt"
  "time"

  "github.com/InfinityTools/go-logging"

  "github.com/InfinityTools/bmpfilter/bmp"
  "github.com/InfinityTools/bmpfilter/filter"
  "github.com/InfinityTools/bmpfilter/raster"
)

// FilterSpec names a filter and its unparsed parameters.
type FilterSpec struct {
  Name    string
  Params  []string
}

// Job describes a single conversion from Input to Output.
type Job struct {
  Input   string
  Output  string
  Filters []FilterSpec
}


// Run executes the given job. All filters are created before the input file is read, so invalid filter arguments
// never touch the file system.
//
// Errors wrap bmp.ErrIO, bmp.ErrFormat or filter.ErrArgument.
func Run(job Job) error {
  if job.Input == "" { return errors.New("no input file specified") }
  if job.Output == "" { return errors.New("no output file specified") }

  filters, err := BuildChain(job.Filters)
  if err != nil { return err }

  start := time.Now()
  logging.Infof("Processing %q -> %q (%d filters)\n", job.Input, job.Output, len(filters))

  logging.Logln("Loading input file")
  img, err := bmp.Decode(job.Input)
  if err != nil { return err }
  logging.Logf("Finished loading input file (%d x %d)\n", img.Width(), img.Height())

  img = Apply(img, filters)

  logging.Logln("Writing output file")
  if err := bmp.Encode(img, job.Output); err != nil { return err }
  logging.Infof("Finished %q (%d x %d) in %v\n", job.Output, img.Width(), img.Height(), time.Since(start))
  return nil
}

// BuildChain creates the filters of the given specs in order. Fails on the first unknown filter or invalid parameter.
func BuildChain(specs []FilterSpec) ([]filter.Filter, error) {
  filters := make([]filter.Filter, 0, len(specs))
  for idx, spec := range specs {
    f, err := filter.Create(spec.Name, spec.Params)
    if err != nil { return nil, fmt.Errorf("Filter #%d (%s): %w", idx, spec.Name, err) }
    filters = append(filters, f)
  }
  return filters, nil
}

// Apply applies the filters in order and returns the final image. img is not modified.
func Apply(img *raster.Image, filters []filter.Filter) *raster.Image {
  for idx, f := range filters {
    logging.Logf("Applying filter #%d %q\n", idx, f.Name())
    img = f.Apply(img)
  }
  return img
}
