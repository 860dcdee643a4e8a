package filter
/*
Implements filter "neg":
Parameters: none
*/

import (
  "github.com/InfinityTools/bmpfilter/raster"
)

const (
  filterNameNegative = "neg"
)

// Negative inverts every color channel.
type Negative struct {}

// Register filter for use by the pipeline.
func init() {
  registerFilter(filterNameNegative, func(params []string) (Filter, error) {
    if err := checkParamCount(filterNameNegative, params, 0); err != nil { return nil, err }
    return NewNegative(), nil
  })
}


// NewNegative creates a new Negative filter.
func NewNegative() *Negative {
  return &Negative{}
}

// Name returns the name of the filter for identification purposes.
func (f *Negative) Name() string {
  return filterNameNegative
}

// Apply returns the color negative of img.
func (f *Negative) Apply(img *raster.Image) *raster.Image {
  width, height := img.Width(), img.Height()
  out := raster.New(width, height)
  processRows(height, func(y int) {
    for x := 0; x < width; x++ {
      p := img.At(y, x)
      out.Set(y, x, raster.Pixel{R: 1.0 - p.R, G: 1.0 - p.G, B: 1.0 - p.B})
    }
  })
  return out
}
