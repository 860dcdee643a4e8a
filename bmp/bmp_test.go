package bmp

import (
  "bytes"
  "encoding/binary"
  "errors"
  "io"
  "math"
  "os"
  "path/filepath"
  "testing"

  "github.com/google/go-cmp/cmp"
  xbmp "golang.org/x/image/bmp"

  "github.com/InfinityTools/bmpfilter/raster"
)

// testImage returns an image with distinct 8-bit exact colors in every pixel.
func testImage(width, height int) *raster.Image {
  img := raster.New(width, height)
  for y := 0; y < height; y++ {
    for x := 0; x < width; x++ {
      img.Set(y, x, raster.FromBytes(byte(x * 37 + y), byte(y * 53 + 7), byte((x ^ y) * 19)))
    }
  }
  return img
}

// rawFile assembles a BMP stream with the given headers followed by the given pixel bytes.
func rawFile(header FileHeader, info InfoHeader, pixels []byte) []byte {
  buf, err := encodeHeaders(&header, &info)
  if err != nil { panic(err) }
  return append(buf, pixels...)
}

func TestRoundTripStream(t *testing.T) {
  for _, dim := range [][2]int{{1, 1}, {2, 3}, {3, 2}, {4, 4}, {5, 7}, {17, 9}} {
    img := testImage(dim[0], dim[1])
    var buf bytes.Buffer
    if err := Write(&buf, img); err != nil {
      t.Fatalf("Write(%dx%d): %v", dim[0], dim[1], err)
    }
    out, err := Read(&buf)
    if err != nil {
      t.Fatalf("Read(%dx%d): %v", dim[0], dim[1], err)
    }
    if !out.Equal(img) {
      t.Errorf("round trip of %dx%d image changed pixel data", dim[0], dim[1])
    }
  }
}

func TestRoundTripFile(t *testing.T) {
  path := filepath.Join(t.TempDir(), "image.bmp")
  img := testImage(6, 5)
  if err := Encode(img, path); err != nil {
    t.Fatalf("Encode: %v", err)
  }
  out, err := Decode(path)
  if err != nil {
    t.Fatalf("Decode: %v", err)
  }
  if !out.Equal(img) {
    t.Error("Decode(Encode(img)) differs from img")
  }
}

func TestRoundTripAllLevels(t *testing.T) {
  img := raster.New(256, 1)
  for x := 0; x < 256; x++ {
    img.Set(0, x, raster.FromBytes(byte(x), byte(255 - x), byte(x / 2)))
  }
  var buf bytes.Buffer
  if err := Write(&buf, img); err != nil {
    t.Fatal(err)
  }
  out, err := Read(&buf)
  if err != nil {
    t.Fatal(err)
  }
  if !out.Equal(img) {
    t.Error("8-bit levels did not survive round trip")
  }
}

func TestEmptyImage(t *testing.T) {
  var buf bytes.Buffer
  if err := Write(&buf, raster.New(0, 0)); err != nil {
    t.Fatal(err)
  }
  if buf.Len() != PixelDataOffset {
    t.Errorf("encoded size = %d, want %d", buf.Len(), PixelDataOffset)
  }
  out, err := Read(&buf)
  if err != nil {
    t.Fatal(err)
  }
  if out.Width() != 0 || out.Height() != 0 {
    t.Errorf("dimension = %dx%d, want 0x0", out.Width(), out.Height())
  }
}

func TestRowPadding(t *testing.T) {
  tests := []struct {
    width, rowSize, padding int
  }{
    {1, 4, 1},
    {2, 8, 2},
    {3, 12, 3},
    {4, 12, 0},
    {5, 16, 1},
  }
  for _, tt := range tests {
    if got := RowSize(tt.width); got != tt.rowSize || got % 4 != 0 {
      t.Errorf("RowSize(%d) = %d, want %d", tt.width, got, tt.rowSize)
    }
    if got := Padding(tt.width); got != tt.padding {
      t.Errorf("Padding(%d) = %d, want %d", tt.width, got, tt.padding)
    }

    const height = 3
    img := raster.New(tt.width, height)
    var buf bytes.Buffer
    if err := Write(&buf, img); err != nil {
      t.Fatal(err)
    }
    data := buf.Bytes()
    if want := PixelDataOffset + tt.rowSize * height; len(data) != want {
      t.Errorf("width %d: file size = %d, want %d", tt.width, len(data), want)
    }
    for y := 0; y < height; y++ {
      row := data[PixelDataOffset + y * tt.rowSize : PixelDataOffset + (y + 1) * tt.rowSize]
      for i := tt.width * 3; i < len(row); i++ {
        if row[i] != 0 {
          t.Errorf("width %d: padding byte %d of row %d = %d, want 0", tt.width, i, y, row[i])
        }
      }
    }
  }
}

func TestHeaderCodec(t *testing.T) {
  header, info := NewHeaders(7, 3)
  header.Reserved = [2]int16{-1, 2}
  info.UsedColors = 12
  data, err := encodeHeaders(&header, &info)
  if err != nil {
    t.Fatal(err)
  }
  if len(data) != PixelDataOffset {
    t.Fatalf("encoded header size = %d, want %d", len(data), PixelDataOffset)
  }

  gotHeader, err := decodeFileHeader(data[:FileHeaderSize])
  if err != nil {
    t.Fatal(err)
  }
  if diff := cmp.Diff(header, gotHeader); diff != "" {
    t.Errorf("file header mismatch (-want +got):\n%s", diff)
  }
  gotInfo, err := decodeInfoHeader(data[FileHeaderSize:])
  if err != nil {
    t.Fatal(err)
  }
  if diff := cmp.Diff(info, gotInfo); diff != "" {
    t.Errorf("info header mismatch (-want +got):\n%s", diff)
  }

  if _, err := decodeInfoHeader(data[FileHeaderSize:PixelDataOffset-1]); err == nil {
    t.Error("decodeInfoHeader accepted short data")
  }
}

func TestWrittenHeaders(t *testing.T) {
  img := testImage(5, 2)
  var buf bytes.Buffer
  if err := Write(&buf, img); err != nil {
    t.Fatal(err)
  }

  r := bytes.NewReader(buf.Bytes())
  var header FileHeader
  var info InfoHeader
  if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
    t.Fatal(err)
  }
  if err := binary.Read(r, binary.LittleEndian, &info); err != nil {
    t.Fatal(err)
  }

  wantHeader := FileHeader{Magic: [2]byte{'B', 'M'}, FileSize: 54 + 32, Offset: 54}
  if diff := cmp.Diff(wantHeader, header); diff != "" {
    t.Errorf("file header mismatch (-want +got):\n%s", diff)
  }
  wantInfo := InfoHeader{
    HeaderSize: 40, Width: 5, Height: 2, ColorPlanes: 1, Depth: 24,
    RawSize: 32, ResolutionH: 1337, ResolutionV: 1337,
  }
  if diff := cmp.Diff(wantInfo, info); diff != "" {
    t.Errorf("info header mismatch (-want +got):\n%s", diff)
  }
}

func TestBottomUpBGR(t *testing.T) {
  img := raster.New(1, 2)
  img.Set(0, 0, raster.FromBytes(10, 20, 30))   // top
  img.Set(1, 0, raster.FromBytes(40, 50, 60))   // bottom
  var buf bytes.Buffer
  if err := Write(&buf, img); err != nil {
    t.Fatal(err)
  }
  got := buf.Bytes()[PixelDataOffset:]
  want := []byte{60, 50, 40, 0, 30, 20, 10, 0}
  if diff := cmp.Diff(want, got); diff != "" {
    t.Errorf("pixel data mismatch (-want +got):\n%s", diff)
  }
}

func TestEncodeTruncatesComponents(t *testing.T) {
  img := raster.New(1, 1)
  img.Set(0, 0, raster.Pixel{R: 0.999, G: 0.5, B: 0.0})
  var buf bytes.Buffer
  if err := Write(&buf, img); err != nil {
    t.Fatal(err)
  }
  got := buf.Bytes()[PixelDataOffset:PixelDataOffset+3]
  want := []byte{0, 127, 254}
  if diff := cmp.Diff(want, got); diff != "" {
    t.Errorf("quantized BGR mismatch (-want +got):\n%s", diff)
  }
}

func TestDecodeWithXImage(t *testing.T) {
  img := testImage(7, 3)
  var buf bytes.Buffer
  if err := Write(&buf, img); err != nil {
    t.Fatal(err)
  }
  decoded, err := xbmp.Decode(bytes.NewReader(buf.Bytes()))
  if err != nil {
    t.Fatalf("golang.org/x/image/bmp rejects encoded file: %v", err)
  }
  if !raster.FromImage(decoded).Equal(img) {
    t.Error("golang.org/x/image/bmp decodes different pixel data")
  }
}

func TestReadXImageEncoded(t *testing.T) {
  img := testImage(3, 4)
  var buf bytes.Buffer
  if err := xbmp.Encode(&buf, img.ToNRGBA()); err != nil {
    t.Fatal(err)
  }
  out, err := Read(&buf)
  if err != nil {
    t.Fatalf("Read: %v", err)
  }
  if !out.Equal(img) {
    t.Error("image written by golang.org/x/image/bmp decodes differently")
  }
}

func TestReadFormatErrors(t *testing.T) {
  validHeader, validInfo := NewHeaders(2, 2)
  pixels := make([]byte, RawSize(2, 2))

  tests := []struct {
    name string
    data []byte
  }{
    {"empty", nil},
    {"short header", []byte("BM\x10\x00")},
    {"bad magic", func() []byte {
      h := validHeader
      h.Magic = [2]byte{'P', 'K'}
      return rawFile(h, validInfo, pixels)
    }()},
    {"short info header", rawFile(validHeader, validInfo, nil)[:FileHeaderSize+10]},
    {"negative width", func() []byte {
      i := validInfo
      i.Width = -2
      return rawFile(validHeader, i, pixels)
    }()},
    {"negative height", func() []byte {
      i := validInfo
      i.Height = -2
      return rawFile(validHeader, i, pixels)
    }()},
    {"color planes", func() []byte {
      i := validInfo
      i.ColorPlanes = 2
      return rawFile(validHeader, i, pixels)
    }()},
    {"depth 8", func() []byte {
      i := validInfo
      i.Depth = 8
      return rawFile(validHeader, i, pixels)
    }()},
    {"depth 32", func() []byte {
      i := validInfo
      i.Depth = 32
      return rawFile(validHeader, i, pixels)
    }()},
    {"compressed", func() []byte {
      i := validInfo
      i.Compression = 1
      return rawFile(validHeader, i, pixels)
    }()},
    {"palette", func() []byte {
      i := validInfo
      i.PaletteColors = 256
      return rawFile(validHeader, i, pixels)
    }()},
    {"truncated pixels", rawFile(validHeader, validInfo, pixels[:len(pixels)-5])},
    {"missing row", rawFile(validHeader, validInfo, pixels[:RowSize(2)])},
    {"huge dimension", func() []byte {
      i := validInfo
      i.Width, i.Height = 1 << 30, 1 << 30
      return rawFile(validHeader, i, make([]byte, 16))
    }()},
    {"maximum dimension", func() []byte {
      i := validInfo
      i.Width, i.Height = math.MaxInt32, math.MaxInt32
      return rawFile(validHeader, i, make([]byte, 16))
    }()},
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      _, err := Read(bytes.NewReader(tt.data))
      if !errors.Is(err, ErrFormat) {
        t.Errorf("Read() error = %v, want ErrFormat", err)
      }
    })
  }
}

func TestDecodeFormatErrors(t *testing.T) {
  dir := t.TempDir()

  notBMP := filepath.Join(dir, "not.bmp")
  if err := os.WriteFile(notBMP, []byte("GIF89a and some more bytes to pad the header out to size......"), 0644); err != nil {
    t.Fatal(err)
  }
  if _, err := Decode(notBMP); !errors.Is(err, ErrFormat) {
    t.Errorf("Decode(non-BMP) error = %v, want ErrFormat", err)
  }

  header, info := NewHeaders(4, 4)
  info.Depth = 8
  depth8 := filepath.Join(dir, "depth8.bmp")
  if err := os.WriteFile(depth8, rawFile(header, info, make([]byte, RawSize(4, 4))), 0644); err != nil {
    t.Fatal(err)
  }
  if _, err := Decode(depth8); !errors.Is(err, ErrFormat) {
    t.Errorf("Decode(depth 8) error = %v, want ErrFormat", err)
  }

  // huge declared dimension without pixel data must fail before allocating
  header, info = NewHeaders(1, 1)
  info.Width, info.Height = 1 << 20, 1 << 20
  huge := filepath.Join(dir, "huge.bmp")
  if err := os.WriteFile(huge, rawFile(header, info, make([]byte, 16)), 0644); err != nil {
    t.Fatal(err)
  }
  if _, err := Decode(huge); !errors.Is(err, ErrFormat) {
    t.Errorf("Decode(truncated huge) error = %v, want ErrFormat", err)
  }
}

func TestIOErrors(t *testing.T) {
  dir := t.TempDir()
  if _, err := Decode(filepath.Join(dir, "missing.bmp")); !errors.Is(err, ErrIO) {
    t.Errorf("Decode(missing) error = %v, want ErrIO", err)
  }
  if err := Encode(raster.New(1, 1), filepath.Join(dir, "no", "such", "dir.bmp")); !errors.Is(err, ErrIO) {
    t.Errorf("Encode(bad path) error = %v, want ErrIO", err)
  }
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
  return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
  if err := Write(failingWriter{}, raster.New(2, 2)); !errors.Is(err, ErrIO) {
    t.Errorf("Write() error = %v, want ErrIO", err)
  }
}

func TestCheckEncodable(t *testing.T) {
  tests := []struct {
    width, height int
    ok bool
  }{
    {0, 0, true},
    {5, 2, true},
    {20000, 20000, true},     // 1.2 GB of pixel data
    {40000, 20000, false},    // 2.4 GB overflows the signed size fields
    {math.MaxInt32, math.MaxInt32, false},
  }
  for _, tt := range tests {
    err := checkEncodable(tt.width, tt.height)
    if tt.ok && err != nil {
      t.Errorf("checkEncodable(%d, %d) = %v, want nil", tt.width, tt.height, err)
    }
    if !tt.ok && !errors.Is(err, ErrFormat) {
      t.Errorf("checkEncodable(%d, %d) = %v, want ErrFormat", tt.width, tt.height, err)
    }
  }
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
  path := filepath.Join(t.TempDir(), "partial.bmp")
  writeErr := errors.New("write aborted")
  err := writeFile(path, func(w io.Writer) error {
    if _, err := w.Write(make([]byte, 8192)); err != nil { return err }
    return writeErr
  })
  if !errors.Is(err, writeErr) {
    t.Errorf("writeFile() error = %v, want %v", err, writeErr)
  }
  if _, err := os.Stat(path); !os.IsNotExist(err) {
    t.Errorf("output file still exists after failed write (stat error = %v)", err)
  }

  if err := writeFile(path, func(w io.Writer) error { return Write(w, testImage(3, 3)) }); err != nil {
    t.Fatal(err)
  }
  if _, err := os.Stat(path); err != nil {
    t.Errorf("output file missing after successful write: %v", err)
  }
}
