package filter
/*
Implements filter "sharp":
Parameters: none

Also provides the generic 5-point convolution used by "sharp" and "edge".
*/

import (
  "github.com/InfinityTools/bmpfilter/raster"
)

const (
  filterNameSharpen = "sharp"
  filterNameMatrix  = "matrix"
)

// Indices into the weights of a Matrix filter.
const (
  WeightLeft = iota
  WeightRight
  WeightCenter
  WeightUp
  WeightDown
)

// Matrix convolves each color channel with a cross-shaped kernel of five weights.
// Neighbors outside of the image are replaced by the nearest edge pixel.
type Matrix struct {
  Weights [5]float64
}

// Sharpen enhances local contrast.
type Sharpen struct {
  Matrix
}

// Register filter for use by the pipeline.
func init() {
  registerFilter(filterNameSharpen, func(params []string) (Filter, error) {
    if err := checkParamCount(filterNameSharpen, params, 0); err != nil { return nil, err }
    return NewSharpen(), nil
  })
}


// NewMatrix creates a new convolution filter. Weights are ordered left, right, center, up, down.
func NewMatrix(weights [5]float64) *Matrix {
  return &Matrix{Weights: weights}
}

// Name returns the name of the filter for identification purposes.
func (f *Matrix) Name() string {
  return filterNameMatrix
}

// Apply returns the convolution of img with the filter kernel. Results are clamped when stored.
func (f *Matrix) Apply(img *raster.Image) *raster.Image {
  width, height := img.Width(), img.Height()
  out := raster.New(width, height)
  w := f.Weights
  processRows(height, func(y int) {
    up, down := clampIndex(y - 1, height), clampIndex(y + 1, height)
    for x := 0; x < width; x++ {
      c := img.At(y, x)
      l := img.At(y, clampIndex(x - 1, width))
      r := img.At(y, clampIndex(x + 1, width))
      u := img.At(up, x)
      d := img.At(down, x)
      out.Set(y, x, raster.Pixel{
        R: w[WeightCenter]*c.R + w[WeightLeft]*l.R + w[WeightRight]*r.R + w[WeightUp]*u.R + w[WeightDown]*d.R,
        G: w[WeightCenter]*c.G + w[WeightLeft]*l.G + w[WeightRight]*r.G + w[WeightUp]*u.G + w[WeightDown]*d.G,
        B: w[WeightCenter]*c.B + w[WeightLeft]*l.B + w[WeightRight]*r.B + w[WeightUp]*u.B + w[WeightDown]*d.B,
      })
    }
  })
  return out
}


// NewSharpen creates a new Sharpen filter.
func NewSharpen() *Sharpen {
  return &Sharpen{Matrix{Weights: [5]float64{-1, -1, 5, -1, -1}}}
}

// Name returns the name of the filter for identification purposes.
func (f *Sharpen) Name() string {
  return filterNameSharpen
}
