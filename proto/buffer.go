package proto

import (
	"bytes"
	"io"
)

// Buffer implements gzip header encoding.
type Buffer struct {
	Buf []byte
}

// Reader returns new *Reader from *Buffer.
func (b *Buffer) Reader() *Reader {
	return NewReader(bytes.NewReader(b.Buf))
}

// Encoder implements encoding to Buffer.
type Encoder interface {
	Encode(b *Buffer)
}

// Encode value that implements Encoder.
func (b *Buffer) Encode(e Encoder) {
	e.Encode(b)
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(b.Buf) == 0 {
		return 0, io.EOF
	}
	n = copy(p, b.Buf)
	b.Buf = b.Buf[n:]
	return n, nil
}

// PutRaw writes v as raw bytes to buffer.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// PutByte encodes single byte.
func (b *Buffer) PutByte(x byte) {
	b.Buf = append(b.Buf, x)
}

// PutUInt16 encodes little-endian uint16.
func (b *Buffer) PutUInt16(x uint16) {
	buf := make([]byte, 16/8)
	bin.PutUint16(buf, x)
	b.Buf = append(b.Buf, buf...)
}

// PutUInt32 encodes little-endian uint32.
func (b *Buffer) PutUInt32(x uint32) {
	buf := make([]byte, 32/8)
	bin.PutUint32(buf, x)
	b.Buf = append(b.Buf, buf...)
}

// PutCString encodes s followed by a NUL terminator.
func (b *Buffer) PutCString(s string) {
	b.Buf = append(b.Buf, s...)
	b.Buf = append(b.Buf, 0x00)
}
