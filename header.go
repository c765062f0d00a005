package gunz

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-faster/errors"

	"github.com/go-faster/gunz/proto"
)

// Gzip identification bytes.
const (
	magicID1 = 0x1f
	magicID2 = 0x8b
)

// Header is a decoded gzip member header.
//
// Optional fields are non-nil exactly when the governing Flags bit is
// set; an empty Name or Comment is a present empty string, not nil.
// ExtraCount is 0 whenever FlagExtra is clear. The value has no
// meaning beyond its fields and is not mutated after decoding.
type Header struct {
	Method     Method
	Flags      Flags
	ModTime    uint32 // seconds since Unix epoch, 0 when not set
	ExtraFlags byte
	OS         OS

	ExtraCount int     // FEXTRA subfields parsed, contents discarded
	Name       *string // present iff FlagName
	Comment    *string // present iff FlagComment
	CRC16      *uint16 // present iff FlagHCRC, read but not verified
}

// Modified returns ModTime as wall clock time. RFC 1952 reserves the
// zero value for "no timestamp available", reported as ok=false.
func (h Header) Modified() (t time.Time, ok bool) {
	if h.ModTime == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(h.ModTime), 0), true
}

func (h Header) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "method=%s flags=%s mtime=%d xfl=0x%02x os=%s extra=%d",
		h.Method, h.Flags, h.ModTime, h.ExtraFlags, h.OS, h.ExtraCount)
	if h.Name != nil {
		fmt.Fprintf(&b, " name=%q", *h.Name)
	}
	if h.Comment != nil {
		fmt.Fprintf(&b, " comment=%q", *h.Comment)
	}
	if h.CRC16 != nil {
		fmt.Fprintf(&b, " crc16=0x%04x", *h.CRC16)
	}
	return b.String()
}

// Decode reads the header from r in wire order, leaving r positioned
// immediately after the last header byte, right before the compressed
// payload.
//
// The first failed read or check is terminal: h is left unmodified,
// the position of r is unspecified and the caller must not retry on
// the same stream. Failures match ErrTruncatedHeader,
// ErrMagicMismatch, ErrMalformedExtra or ErrInvalidText.
func (h *Header) Decode(r *proto.Reader) error {
	var d Header

	var magic [2]byte
	if err := r.ReadFull(magic[:]); err != nil {
		return errors.Wrap(ErrTruncatedHeader, "magic")
	}
	if magic[0] != magicID1 || magic[1] != magicID2 {
		return errors.Wrapf(ErrMagicMismatch, "got 0x%02x 0x%02x", magic[0], magic[1])
	}

	// The rest of the fixed prefix is atomic: a short read reports
	// plain truncation, not the sub-field it happened in.
	var fixed [8]byte
	if err := r.ReadFull(fixed[:]); err != nil {
		return errors.Wrap(ErrTruncatedHeader, "fixed prefix")
	}
	d.Method = Method(fixed[0])
	d.Flags = Flags(fixed[1])
	d.ModTime = binary.LittleEndian.Uint32(fixed[2:6])
	d.ExtraFlags = fixed[6]
	d.OS = OS(fixed[7])

	if d.Flags.Has(FlagExtra) {
		n, err := decodeExtra(r)
		if err != nil {
			return errors.Wrap(err, "extra")
		}
		d.ExtraCount = n
	}
	if d.Flags.Has(FlagName) {
		s, err := decodeCString(r)
		if err != nil {
			return errors.Wrap(err, "name")
		}
		d.Name = &s
	}
	if d.Flags.Has(FlagComment) {
		s, err := decodeCString(r)
		if err != nil {
			return errors.Wrap(err, "comment")
		}
		d.Comment = &s
	}
	if d.Flags.Has(FlagHCRC) {
		v, err := r.UInt16()
		if err != nil {
			return errors.Wrap(ErrTruncatedHeader, "header crc")
		}
		d.CRC16 = &v
	}

	*h = d
	return nil
}

// decodeExtra walks the FEXTRA subfield list, discarding tags and
// payloads and returning the subfield count. The declared total
// length must be consumed exactly.
func decodeExtra(r *proto.Reader) (int, error) {
	xlen, err := r.UInt16()
	if err != nil {
		return 0, errors.Wrap(ErrTruncatedHeader, "xlen")
	}
	var count int
	for xlen > 0 {
		// Minimum subfield is a 2-byte tag plus a 2-byte length.
		if xlen < 4 {
			return 0, errors.Wrapf(ErrMalformedExtra, "%d trailing bytes", xlen)
		}
		if err := r.Discard(2); err != nil { // subfield tag, not interpreted
			return 0, errors.Wrap(ErrTruncatedHeader, "tag")
		}
		sublen, err := r.UInt16()
		if err != nil {
			return 0, errors.Wrap(ErrTruncatedHeader, "sublen")
		}
		xlen -= 4
		if sublen > xlen {
			return 0, errors.Wrapf(ErrMalformedExtra,
				"subfield length %d exceeds remaining %d", sublen, xlen)
		}
		if err := r.Discard(int(sublen)); err != nil {
			return 0, errors.Wrap(ErrTruncatedHeader, "subfield")
		}
		xlen -= sublen
		count++
	}
	return count, nil
}

// decodeCString reads a NUL-terminated UTF-8 string. No length cap is
// applied; callers needing one wrap the stream with io.LimitReader.
func decodeCString(r *proto.Reader) (string, error) {
	b, err := r.CString()
	if err != nil {
		return "", errors.Wrap(ErrTruncatedHeader, "read")
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidText
	}
	return string(b), nil
}

// Encode writes the header to b in wire order.
//
// Header does not retain FEXTRA subfield contents, so a set FlagExtra
// encodes as an empty subfield list. A nil optional field whose flag
// bit is set encodes as the field's zero value.
func (h Header) Encode(b *proto.Buffer) {
	b.PutByte(magicID1)
	b.PutByte(magicID2)
	b.PutByte(byte(h.Method))
	b.PutByte(byte(h.Flags))
	b.PutUInt32(h.ModTime)
	b.PutByte(h.ExtraFlags)
	b.PutByte(byte(h.OS))
	if h.Flags.Has(FlagExtra) {
		b.PutUInt16(0)
	}
	if h.Flags.Has(FlagName) {
		var s string
		if h.Name != nil {
			s = *h.Name
		}
		b.PutCString(s)
	}
	if h.Flags.Has(FlagComment) {
		var s string
		if h.Comment != nil {
			s = *h.Comment
		}
		b.PutCString(s)
	}
	if h.Flags.Has(FlagHCRC) {
		var v uint16
		if h.CRC16 != nil {
			v = *h.CRC16
		}
		b.PutUInt16(v)
	}
}
