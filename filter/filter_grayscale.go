package filter
/*
Implements filter "gs":
Parameters: none
*/

import (
  "github.com/InfinityTools/bmpfilter/raster"
)

const (
  filterNameGrayscale = "gs"
)

// Luma weights of the red, green and blue channels.
const (
  lumaRed   = 0.299
  lumaGreen = 0.587
  lumaBlue  = 0.114
)

// Grayscale replaces every pixel by its luma value.
type Grayscale struct {}

// Register filter for use by the pipeline.
func init() {
  registerFilter(filterNameGrayscale, func(params []string) (Filter, error) {
    if err := checkParamCount(filterNameGrayscale, params, 0); err != nil { return nil, err }
    return NewGrayscale(), nil
  })
}


// NewGrayscale creates a new Grayscale filter.
func NewGrayscale() *Grayscale {
  return &Grayscale{}
}

// Name returns the name of the filter for identification purposes.
func (f *Grayscale) Name() string {
  return filterNameGrayscale
}

// Apply returns a gray version of img.
func (f *Grayscale) Apply(img *raster.Image) *raster.Image {
  width, height := img.Width(), img.Height()
  out := raster.New(width, height)
  processRows(height, func(y int) {
    for x := 0; x < width; x++ {
      p := img.At(y, x)
      luma := lumaRed*p.R + lumaGreen*p.G + lumaBlue*p.B
      out.Set(y, x, raster.Pixel{R: luma, G: luma, B: luma})
    }
  })
  return out
}
