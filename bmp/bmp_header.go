package bmp
// Provides encoding and decoding of the file and info headers.

import (
  "bytes"

  "github.com/InfinityTools/go-ietools/buffers"
)

// Used internally. Decodes the file header from data of at least FileHeaderSize bytes.
func decodeFileHeader(data []byte) (header FileHeader, err error) {
  buf := buffers.Load(bytes.NewReader(data))
  if buf.Error() != nil { return header, buf.Error() }
  if buf.BufferLength() < FileHeaderSize { return header, errNotEnoughData }

  copy(header.Magic[:], buf.GetString(0x00, 2, false))
  header.FileSize = int32(buf.GetUint32(0x02))
  header.Reserved[0] = int16(buf.GetUint16(0x06))
  header.Reserved[1] = int16(buf.GetUint16(0x08))
  header.Offset = int32(buf.GetUint32(0x0a))
  return header, buf.Error()
}

// Used internally. Decodes the info header from data of at least InfoHeaderSize bytes.
func decodeInfoHeader(data []byte) (info InfoHeader, err error) {
  buf := buffers.Load(bytes.NewReader(data))
  if buf.Error() != nil { return info, buf.Error() }
  if buf.BufferLength() < InfoHeaderSize { return info, errNotEnoughData }

  info.HeaderSize = int32(buf.GetUint32(0x00))
  info.Width = int32(buf.GetUint32(0x04))
  info.Height = int32(buf.GetUint32(0x08))
  info.ColorPlanes = int16(buf.GetUint16(0x0c))
  info.Depth = int16(buf.GetUint16(0x0e))
  info.Compression = int32(buf.GetUint32(0x10))
  info.RawSize = int32(buf.GetUint32(0x14))
  info.ResolutionH = int32(buf.GetUint32(0x18))
  info.ResolutionV = int32(buf.GetUint32(0x1c))
  info.PaletteColors = int32(buf.GetUint32(0x20))
  info.UsedColors = int32(buf.GetUint32(0x24))
  return info, buf.Error()
}

// Used internally. Returns file header and info header as a single block of PixelDataOffset bytes.
func encodeHeaders(header *FileHeader, info *InfoHeader) ([]byte, error) {
  out := buffers.Create()
  if out.Error() != nil { return nil, out.Error() }
  out.InsertBytes(0, PixelDataOffset)
  if out.Error() != nil { return nil, out.Error() }

  out.PutString(0x00, 2, string(header.Magic[:]))
  out.PutUint32(0x02, uint32(header.FileSize))
  out.PutInt16(0x06, header.Reserved[0])
  out.PutInt16(0x08, header.Reserved[1])
  out.PutUint32(0x0a, uint32(header.Offset))
  if out.Error() != nil { return nil, out.Error() }

  ofs := FileHeaderSize
  out.PutUint32(ofs + 0x00, uint32(info.HeaderSize))
  out.PutUint32(ofs + 0x04, uint32(info.Width))
  out.PutUint32(ofs + 0x08, uint32(info.Height))
  out.PutInt16(ofs + 0x0c, info.ColorPlanes)
  out.PutInt16(ofs + 0x0e, info.Depth)
  out.PutUint32(ofs + 0x10, uint32(info.Compression))
  out.PutUint32(ofs + 0x14, uint32(info.RawSize))
  out.PutUint32(ofs + 0x18, uint32(info.ResolutionH))
  out.PutUint32(ofs + 0x1c, uint32(info.ResolutionV))
  out.PutUint32(ofs + 0x20, uint32(info.PaletteColors))
  out.PutUint32(ofs + 0x24, uint32(info.UsedColors))
  if out.Error() != nil { return nil, out.Error() }

  return out.Bytes(), nil
}
