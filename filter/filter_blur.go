package filter
/*
Implements filter "blur":
Parameters:
- sigma: non-negative decimal number, at most MaxBlurSigma
*/

import (
  "fmt"
  "math"

  "github.com/InfinityTools/bmpfilter/raster"
)

const (
  filterNameBlur = "blur"

  // MaxBlurSigma is the largest supported standard deviation of the blur kernel.
  MaxBlurSigma = 10000.0
)

// GaussianBlur applies a separable Gaussian kernel: a horizontal pass followed by a vertical pass.
type GaussianBlur struct {
  sigma   float64
  weights []float64   // weights[d] for distance d in [0, radius]
}

// Register filter for use by the pipeline.
func init() {
  registerFilter(filterNameBlur, func(params []string) (Filter, error) {
    if err := checkParamCount(filterNameBlur, params, 1); err != nil { return nil, err }
    sigma, err := parseNumber(params[0])
    if err != nil { return nil, err }
    if sigma > MaxBlurSigma {
      return nil, fmt.Errorf("%w: sigma out of range [0, %g]: %s", ErrArgument, MaxBlurSigma, params[0])
    }
    return NewGaussianBlur(sigma), nil
  })
}


// NewGaussianBlur creates a new GaussianBlur filter. A sigma of 0 results in a filter that copies the image.
// Sigma is limited to MaxBlurSigma.
func NewGaussianBlur(sigma float64) *GaussianBlur {
  if sigma > MaxBlurSigma { sigma = MaxBlurSigma }
  return &GaussianBlur{sigma: sigma, weights: gaussianWeights(sigma)}
}

// Name returns the name of the filter for identification purposes.
func (f *GaussianBlur) Name() string {
  return filterNameBlur
}

// Sigma returns the standard deviation of the kernel.
func (f *GaussianBlur) Sigma() float64 {
  return f.sigma
}

// Radius returns the maximum distance of pixels contributing to a result pixel.
func (f *GaussianBlur) Radius() int {
  return len(f.weights) - 1
}

// Weights returns a copy of the one-sided weight table, indexed by distance from the center.
// The center weight plus twice the sum of all other weights is 1.
func (f *GaussianBlur) Weights() []float64 {
  return append([]float64(nil), f.weights...)
}

// Apply returns a blurred version of img.
func (f *GaussianBlur) Apply(img *raster.Image) *raster.Image {
  width, height := img.Width(), img.Height()
  delta := f.Radius()

  tmp := raster.New(width, height)
  processRows(height, func(y int) {
    for x := 0; x < width; x++ {
      var sum raster.Pixel
      for ofs := -delta; ofs <= delta; ofs++ {
        p := img.At(y, clampIndex(x + ofs, width))
        w := f.weights[absInt(ofs)]
        sum.R += p.R * w
        sum.G += p.G * w
        sum.B += p.B * w
      }
      tmp.Set(y, x, sum)
    }
  })

  out := raster.New(width, height)
  processRows(height, func(y int) {
    for x := 0; x < width; x++ {
      var sum raster.Pixel
      for ofs := -delta; ofs <= delta; ofs++ {
        p := tmp.At(clampIndex(y + ofs, height), x)
        w := f.weights[absInt(ofs)]
        sum.R += p.R * w
        sum.G += p.G * w
        sum.B += p.B * w
      }
      out.Set(y, x, sum)
    }
  })
  return out
}


// Used internally. Computes the normalized one-sided weight table for sigma in range [0, MaxBlurSigma].
func gaussianWeights(sigma float64) []float64 {
  if !(sigma > 0.0) || sigma > MaxBlurSigma { return []float64{1.0} }
  delta := int(math.Floor(3.0 * sigma))
  // kernel covers the center pixel only
  if delta == 0 { return []float64{1.0} }

  weights := make([]float64, delta + 1)
  factor := 1.0 / (sigma * math.Sqrt(2.0 * math.Pi))
  sum := 0.0
  for d := 0; d <= delta; d++ {
    w := factor * math.Exp(-float64(d * d) / (2.0 * sigma * sigma))
    sum += w
    // distances > 0 are applied on both sides of the center
    if d > 0 { w /= 2.0 }
    weights[d] = w
  }
  for d := range weights {
    weights[d] /= sum
  }
  return weights
}

// Used internally.
func absInt(v int) int {
  if v < 0 { return -v }
  return v
}
