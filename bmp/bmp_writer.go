package bmp
// Encodes raster images as BMP files.

import (
  "bufio"
  "fmt"
  "io"
  "math"
  "os"

  "github.com/InfinityTools/bmpfilter/raster"
)

// Encode writes the image as 24-bit BMP file to the given path. An existing file is overwritten.
// No output file is left behind if encoding fails.
//
// Returns an error wrapping ErrFormat if the image is too large for the BMP format, or ErrIO if the file cannot be
// created or written.
func Encode(img *raster.Image, path string) error {
  if err := checkEncodable(img.Width(), img.Height()); err != nil { return err }
  return writeFile(path, func(w io.Writer) error { return Write(w, img) })
}

// Write encodes the image as 24-bit BMP to the given Writer.
//
// Returns an error wrapping ErrFormat if the image is too large for the BMP format, or ErrIO if writing fails.
func Write(w io.Writer, img *raster.Image) error {
  buf, err := encodeImage(img)
  if err != nil { return err }
  if _, err := w.Write(buf); err != nil { return fmt.Errorf("%w: writing BMP data: %v", ErrIO, err) }
  return nil
}

// NewHeaders synthesizes file and info header for an image of the given dimension. The dimension must be accepted
// by the encoder, otherwise size fields are truncated.
func NewHeaders(width, height int) (FileHeader, InfoHeader) {
  rawSize := int32(RawSize(width, height))
  header := FileHeader{
    Magic: [2]byte{sig_bmp[0], sig_bmp[1]},
    FileSize: rawSize + PixelDataOffset,
    Offset: PixelDataOffset,
  }
  info := InfoHeader{
    HeaderSize: InfoHeaderSize,
    Width: int32(width),
    Height: int32(height),
    ColorPlanes: 1,
    Depth: BitDepth,
    Compression: 0,
    RawSize: rawSize,
    ResolutionH: Resolution,
    ResolutionV: Resolution,
  }
  return header, info
}


// Used internally. Checks whether file size and dimension of the image fit into the signed 32-bit header fields.
func checkEncodable(width, height int) error {
  rawSize, err := pixelDataSize(width, height)
  if err != nil || width > math.MaxInt32 || height > math.MaxInt32 ||
     rawSize > int64(math.MaxInt32 - PixelDataOffset) {
    return fmt.Errorf("%w: %d x %d image exceeds the maximum BMP file size", ErrFormat, width, height)
  }
  return nil
}

// Used internally. Returns the complete BMP file content as byte slice.
func encodeImage(img *raster.Image) ([]byte, error) {
  width, height := img.Width(), img.Height()
  if err := checkEncodable(width, height); err != nil { return nil, err }
  header, info := NewHeaders(width, height)
  headers, err := encodeHeaders(&header, &info)
  if err != nil { return nil, fmt.Errorf("%w: encoding BMP headers: %v", ErrIO, err) }

  // pre-allocating whole file, padding bytes stay zero
  buf := make([]byte, int(header.FileSize))
  copy(buf, headers)

  rowSize := RowSize(width)
  ofsRow := PixelDataOffset
  // last image row comes first
  for y := height - 1; y >= 0; y-- {
    ofs := ofsRow
    for x := 0; x < width; x++ {
      p := img.At(y, x)
      buf[ofs], buf[ofs+1], buf[ofs+2] = raster.Quantize(p.B), raster.Quantize(p.G), raster.Quantize(p.R)
      ofs += 3
    }
    ofsRow += rowSize
  }

  return buf, nil
}

// Used internally. Creates the file at path and passes a buffered writer to write. The file is removed if any step
// fails.
func writeFile(path string, write func(w io.Writer) error) (err error) {
  fout, err := os.Create(path)
  if err != nil { return fmt.Errorf("%w: cannot create output file %q: %v", ErrIO, path, err) }
  defer func() {
    if err2 := fout.Close(); err2 != nil && err == nil {
      err = fmt.Errorf("%w: closing output file %q: %v", ErrIO, path, err2)
    }
    if err != nil { os.Remove(path) }
  }()

  w := bufio.NewWriter(fout)
  if err = write(w); err != nil { return }
  if err2 := w.Flush(); err2 != nil { err = fmt.Errorf("%w: writing output file %q: %v", ErrIO, path, err2) }
  return
}
