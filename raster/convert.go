package raster
// Provides conversion between Image and the image types of the standard library.

import (
  "image"
  "image/color"
  "image/draw"
)

// ToNRGBA converts the image into an opaque image.NRGBA. Components are quantized to 8 bits by truncation,
// the same way the BMP encoder does it.
func (img *Image) ToNRGBA() *image.NRGBA {
  out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
  for y := 0; y < img.height; y++ {
    ofs := y * out.Stride
    for x := 0; x < img.width; x++ {
      p := img.pixels[y * img.width + x]
      out.Pix[ofs], out.Pix[ofs+1], out.Pix[ofs+2], out.Pix[ofs+3] = Quantize(p.R), Quantize(p.G), Quantize(p.B), 255
      ofs += 4
    }
  }
  return out
}

// FromImage creates a new Image from the given image. Alpha is discarded. Returns an empty image if src is nil.
func FromImage(src image.Image) *Image {
  if src == nil { return New(0, 0) }

  b := src.Bounds()
  nrgba, ok := src.(*image.NRGBA)
  if !ok || b.Min != image.ZP {
    nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
    draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
  }

  img := New(b.Dx(), b.Dy())
  for y := 0; y < img.height; y++ {
    for x := 0; x < img.width; x++ {
      c := nrgba.NRGBAAt(x, y)
      img.pixels[y * img.width + x] = FromBytes(c.R, c.G, c.B)
    }
  }
  return img
}

// Color returns the pixel as 8-bit color value, quantized by truncation.
func (p Pixel) Color() color.NRGBA {
  return color.NRGBA{Quantize(p.R), Quantize(p.G), Quantize(p.B), 255}
}

// Quantize converts a normalized component into an 8-bit value by truncation. Values are clamped first.
func Quantize(value float64) byte {
  return byte(clamp(value) * 255.0)
}

// FromBytes creates a pixel from 8-bit red, green and blue components.
func FromBytes(r, g, b byte) Pixel {
  return Pixel{float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0}
}
