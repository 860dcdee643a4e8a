package filter
/*
Implements filter "crop":
Parameters:
- width: non-negative integer
- height: non-negative integer
*/

import (
  "github.com/InfinityTools/bmpfilter/raster"
)

const (
  filterNameCrop = "crop"
)

// Crop keeps the top-left region of an image. The region is restricted to the source dimension.
type Crop struct {
  Width, Height int
}

// Register filter for use by the pipeline.
func init() {
  registerFilter(filterNameCrop, newCropFromParams)
}


// NewCrop creates a new Crop filter for the given target dimension.
func NewCrop(width, height int) *Crop {
  return &Crop{Width: width, Height: height}
}

// Name returns the name of the filter for identification purposes.
func (f *Crop) Name() string {
  return filterNameCrop
}

// Apply returns the top-left min(Width, w) x min(Height, h) block of img.
func (f *Crop) Apply(img *raster.Image) *raster.Image {
  width, height := img.Width(), img.Height()
  if f.Width < width { width = f.Width }
  if f.Height < height { height = f.Height }

  out := raster.New(width, height)
  processRows(height, func(y int) {
    for x := 0; x < width; x++ {
      out.Set(y, x, img.At(y, x))
    }
  })
  return out
}


// Used internally. Creates a Crop filter from "width" and "height" parameters.
func newCropFromParams(params []string) (Filter, error) {
  if err := checkParamCount(filterNameCrop, params, 2); err != nil { return nil, err }
  width, err := parseSize(params[0])
  if err != nil { return nil, err }
  height, err := parseSize(params[1])
  if err != nil { return nil, err }
  return NewCrop(width, height), nil
}
