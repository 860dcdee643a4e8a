/*
Package raster provides the in-memory pixel buffer shared by the BMP codec and the filters.

Pixels are stored as normalized RGB triples in a flat slice. Row 0 is the top row of the image, column 0 the
leftmost column. Every component is clamped to [0.0, 1.0] when it is stored.

BMP Filter is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package raster

// Pixel is a single RGB color with components in range [0.0, 1.0].
type Pixel struct {
  R, G, B float64
}

// Commonly used pixel values.
var (
  White = Pixel{1.0, 1.0, 1.0}
  Black = Pixel{0.0, 0.0, 0.0}
)

// Image is a fixed-size grid of pixels.
type Image struct {
  width, height int
  pixels        []Pixel     // row-major, index = row * width + column
}


// New creates an image of the given dimension. All pixels are initialized to white.
// Negative dimensions are treated as 0.
func New(width, height int) *Image {
  if width < 0 { width = 0 }
  if height < 0 { height = 0 }
  img := Image{width: width, height: height, pixels: make([]Pixel, width * height)}
  for i := range img.pixels {
    img.pixels[i] = White
  }
  return &img
}


// Width returns the number of columns.
func (img *Image) Width() int {
  return img.width
}

// Height returns the number of rows.
func (img *Image) Height() int {
  return img.height
}

// At returns the pixel at the given row and column. Panics if the position is out of range.
func (img *Image) At(row, column int) Pixel {
  return img.pixels[img.offset(row, column)]
}

// Set stores the pixel at the given row and column. Components are clamped to [0.0, 1.0].
// Panics if the position is out of range.
func (img *Image) Set(row, column int, p Pixel) {
  img.pixels[img.offset(row, column)] = Pixel{clamp(p.R), clamp(p.G), clamp(p.B)}
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
  out := Image{width: img.width, height: img.height, pixels: make([]Pixel, len(img.pixels))}
  copy(out.pixels, img.pixels)
  return &out
}

// Equal returns whether both images have the same dimension and identical pixel values.
func (img *Image) Equal(other *Image) bool {
  if img == nil || other == nil { return img == other }
  if img.width != other.width || img.height != other.height { return false }
  for i := range img.pixels {
    if img.pixels[i] != other.pixels[i] { return false }
  }
  return true
}


// Used internally. Maps a logical position to the slice index.
func (img *Image) offset(row, column int) int {
  if row < 0 || row >= img.height || column < 0 || column >= img.width {
    panic("raster: position out of range")
  }
  return row * img.width + column
}

// Used internally. Restricts value to range [0.0, 1.0].
func clamp(value float64) float64 {
  // also maps NaN to 0
  if !(value > 0.0) { return 0.0 }
  if value > 1.0 { return 1.0 }
  return value
}
