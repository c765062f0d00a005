package proto

import (
	"bufio"
	"io"

	"github.com/go-faster/errors"
)

// Reader implements gzip header decoding from buffered reader.
//
// Every read is attempted exactly once; a failed read leaves the
// reader at an unspecified position.
type Reader struct {
	s *bufio.Reader
	b [4]byte // scratch for fixed-size reads
}

// Byte reads single byte.
func (r *Reader) Byte() (byte, error) {
	v, err := r.s.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "read")
	}
	return v, nil
}

// ReadFull reads exactly len(buf) bytes into buf, failing if fewer
// are available.
func (r *Reader) ReadFull(buf []byte) error {
	if _, err := io.ReadFull(r.s, buf); err != nil {
		return errors.Wrap(err, "read full")
	}
	return nil
}

// Discard consumes exactly n bytes.
func (r *Reader) Discard(n int) error {
	if _, err := r.s.Discard(n); err != nil {
		return errors.Wrap(err, "discard")
	}
	return nil
}

// UInt16 decodes little-endian uint16.
func (r *Reader) UInt16() (uint16, error) {
	if err := r.ReadFull(r.b[:2]); err != nil {
		return 0, err
	}
	return bin.Uint16(r.b[:2]), nil
}

// UInt32 decodes little-endian uint32.
func (r *Reader) UInt32() (uint32, error) {
	if err := r.ReadFull(r.b[:4]); err != nil {
		return 0, err
	}
	return bin.Uint32(r.b[:4]), nil
}

// CString reads bytes up to a NUL terminator. The terminator is
// consumed and not included in the result.
//
// No length cap is applied: the result grows with the field.
func (r *Reader) CString() ([]byte, error) {
	var buf []byte
	for {
		c, err := r.s.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "read")
		}
		if c == 0x00 {
			return buf, nil
		}
		buf = append(buf, c)
	}
}

// Reset discards buffered data and switches the reader to src.
func (r *Reader) Reset(src io.Reader) {
	r.s.Reset(src)
}

const defaultReaderSize = 1024 // 1kb

// NewReader initializes new Reader from provided io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		s: bufio.NewReaderSize(r, defaultReaderSize),
	}
}
