package filter
/*
Implements filter "edge":
Parameters:
- threshold: non-negative decimal number
*/

import (
  "github.com/InfinityTools/bmpfilter/raster"
)

const (
  filterNameEdge = "edge"
)

// EdgeDetection turns pixels white where the gray level changes by more than Threshold, black elsewhere.
type EdgeDetection struct {
  Threshold float64
}

// Register filter for use by the pipeline.
func init() {
  registerFilter(filterNameEdge, func(params []string) (Filter, error) {
    if err := checkParamCount(filterNameEdge, params, 1); err != nil { return nil, err }
    threshold, err := parseNumber(params[0])
    if err != nil { return nil, err }
    return NewEdgeDetection(threshold), nil
  })
}


// NewEdgeDetection creates a new EdgeDetection filter.
func NewEdgeDetection(threshold float64) *EdgeDetection {
  return &EdgeDetection{Threshold: threshold}
}

// Name returns the name of the filter for identification purposes.
func (f *EdgeDetection) Name() string {
  return filterNameEdge
}

// Apply returns a black and white edge map of img.
func (f *EdgeDetection) Apply(img *raster.Image) *raster.Image {
  gray := NewGrayscale().Apply(img)
  out := NewMatrix([5]float64{-1, -1, 4, -1, -1}).Apply(gray)

  // out is owned by this call and can be thresholded in place
  width, height := out.Width(), out.Height()
  processRows(height, func(y int) {
    for x := 0; x < width; x++ {
      if out.At(y, x).R > f.Threshold {
        out.Set(y, x, raster.White)
      } else {
        out.Set(y, x, raster.Black)
      }
    }
  })
  return out
}
