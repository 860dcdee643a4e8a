package bmp
// Decodes BMP files into raster images.

import (
  "bufio"
  "errors"
  "fmt"
  "io"
  "os"

  "github.com/InfinityTools/bmpfilter/raster"
)

// Decode reads the BMP file at the given path and returns its content as image.
//
// Returns an error wrapping ErrIO if the file cannot be opened, or ErrFormat if the content is not a supported BMP.
func Decode(path string) (*raster.Image, error) {
  fin, err := os.Open(path)
  if err != nil { return nil, fmt.Errorf("%w: cannot open input file %q: %v", ErrIO, path, err) }
  defer fin.Close()

  // file size is used to reject truncated pixel data before reading it
  var size int64 = -1
  if fi, err := fin.Stat(); err == nil && fi.Mode().IsRegular() {
    size = fi.Size()
  }

  return readImage(bufio.NewReader(fin), size)
}

// Read decodes a BMP from the given Reader.
//
// Returns an error wrapping ErrFormat if the content is not a supported BMP. Memory is only allocated for pixel data
// that is actually available.
func Read(r io.Reader) (*raster.Image, error) {
  return readImage(bufio.NewReader(r), -1)
}


// Used internally. Decodes header and pixel data. size is the total number of available bytes if known, -1 otherwise.
func readImage(r io.Reader, size int64) (*raster.Image, error) {
  data := make([]byte, FileHeaderSize)
  if _, err := io.ReadFull(r, data); err != nil { return nil, readError(err, "file header") }
  header, err := decodeFileHeader(data)
  if err != nil { return nil, fmt.Errorf("%w: file header: %v", ErrFormat, err) }
  if err := header.validate(); err != nil { return nil, err }

  data = make([]byte, InfoHeaderSize)
  if _, err := io.ReadFull(r, data); err != nil { return nil, readError(err, "info header") }
  info, err := decodeInfoHeader(data)
  if err != nil { return nil, fmt.Errorf("%w: info header: %v", ErrFormat, err) }
  if err := info.validate(); err != nil { return nil, err }

  width, height := int(info.Width), int(info.Height)
  rawSize, err := pixelDataSize(width, height)
  if err != nil { return nil, err }
  if size >= 0 && size < int64(PixelDataOffset) + rawSize {
    return nil, fmt.Errorf("%w: not enough bytes for %dx%d pixel data", ErrFormat, width, height)
  }

  pixels, err := readPixelData(r, rawSize)
  if err != nil { return nil, err }

  img := raster.New(width, height)
  rowSize := RowSize(width)
  ofsRow := 0
  // first row in file is the bottom row of the image
  for y := height - 1; y >= 0; y-- {
    ofs := ofsRow
    for x := 0; x < width; x++ {
      img.Set(y, x, raster.FromBytes(pixels[ofs+2], pixels[ofs+1], pixels[ofs]))
      ofs += 3
    }
    ofsRow += rowSize
  }

  return img, nil
}

// Used internally. Reads exactly rawSize bytes of pixel data. The buffer grows with the data that arrives, so bogus
// dimensions in the header fail without allocating memory for them.
func readPixelData(r io.Reader, rawSize int64) ([]byte, error) {
  data, err := io.ReadAll(io.LimitReader(r, rawSize))
  if err != nil { return nil, readError(err, "pixel data") }
  if int64(len(data)) < rawSize { return nil, fmt.Errorf("%w: not enough bytes to read pixel data", ErrFormat) }
  return data, nil
}

// Used internally. Checks file header constraints.
func (h *FileHeader) validate() error {
  if string(h.Magic[:]) != sig_bmp { return fmt.Errorf("%w: not a BMP file (magic %q)", ErrFormat, h.Magic[:]) }
  return nil
}

// Used internally. Checks info header constraints.
func (h *InfoHeader) validate() error {
  if h.Width < 0 || h.Height < 0 {
    return fmt.Errorf("%w: negative width or height (%d x %d)", ErrFormat, h.Width, h.Height)
  }
  if h.ColorPlanes != 1 { return fmt.Errorf("%w: color planes must be 1, found %d", ErrFormat, h.ColorPlanes) }
  if h.Depth != BitDepth { return fmt.Errorf("%w: unsupported color depth %d", ErrFormat, h.Depth) }
  if h.Compression != 0 { return fmt.Errorf("%w: unsupported compression type %d", ErrFormat, h.Compression) }
  if h.PaletteColors != 0 { return fmt.Errorf("%w: unsupported color palette (%d entries)", ErrFormat, h.PaletteColors) }
  return nil
}

// Used internally. Maps premature end of data to ErrFormat, anything else to ErrIO.
func readError(err error, name string) error {
  if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
    return fmt.Errorf("%w: not enough bytes to read %s", ErrFormat, name)
  }
  return fmt.Errorf("%w: reading %s: %v", ErrIO, name, err)
}
