/*
Package bmp reads and writes uncompressed 24-bit Windows bitmaps.

Only the subset with a 40 byte info header, one color plane, 24 bits per pixel, no compression and no palette is
supported. Everything else is rejected with ErrFormat.

BMP Filter is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package bmp

import (
  "errors"
  "fmt"
  "math"
)

const (
  // Size of the file header in bytes.
  FileHeaderSize  = 14
  // Size of the info header in bytes.
  InfoHeaderSize  = 40
  // Offset of the pixel data in files written by this package.
  PixelDataOffset = FileHeaderSize + InfoHeaderSize

  // The only supported color depth.
  BitDepth        = 24
  // Resolution stored in the info header of written files.
  Resolution      = 1337

  // Used internally. File signature.
  sig_bmp         = "BM"
)

// Error kinds reported by the codec. Test with errors.Is.
var (
  // ErrIO indicates that a file could not be opened, created or written.
  ErrIO     = errors.New("bmp: i/o error")
  // ErrFormat indicates malformed, truncated or unsupported BMP content.
  ErrFormat = errors.New("bmp: invalid format")
)

var errNotEnoughData = errors.New("not enough data")

// FileHeader is the 14 byte header at the start of every BMP file.
type FileHeader struct {
  Magic     [2]byte   // "BM"
  FileSize  int32     // total size of the file in bytes
  Reserved  [2]int16  // unused
  Offset    int32     // offset of the pixel data
}

// InfoHeader is the 40 byte BITMAPINFOHEADER following the file header.
type InfoHeader struct {
  HeaderSize    int32   // size of this header (40)
  Width         int32   // width in pixels
  Height        int32   // height in pixels, positive for bottom-up bitmaps
  ColorPlanes   int16   // must be 1
  Depth         int16   // bits per pixel
  Compression   int32   // 0: uncompressed
  RawSize       int32   // size of the pixel data, including row padding
  ResolutionH   int32   // horizontal resolution in pixels per meter
  ResolutionV   int32   // vertical resolution in pixels per meter
  PaletteColors int32   // number of palette entries
  UsedColors    int32   // number of important colors
}


// RowSize returns the size in bytes of a single row of pixel data for the given width, padding included.
func RowSize(width int) int {
  return (width * BitDepth + 31) / 32 * 4
}

// Padding returns the number of padding bytes appended to every row of pixel data for the given width.
func Padding(width int) int {
  return (4 - (width * 3) % 4) % 4
}

// RawSize returns the size in bytes of the whole pixel data block for the given dimension.
func RawSize(width, height int) int {
  return RowSize(width) * height
}

// Used internally. Returns the size of the pixel data block in bytes. Fails with ErrFormat if the size cannot be
// addressed on this platform.
func pixelDataSize(width, height int) (int64, error) {
  rowSize := (int64(width) * BitDepth + 31) / 32 * 4
  if height > 0 && rowSize > (math.MaxInt64 - PixelDataOffset) / int64(height) {
    return 0, fmt.Errorf("%w: pixel data of %d x %d image too large", ErrFormat, width, height)
  }
  size := rowSize * int64(height)
  if size > int64(math.MaxInt - PixelDataOffset) {
    return 0, fmt.Errorf("%w: pixel data of %d x %d image too large", ErrFormat, width, height)
  }
  return size, nil
}
