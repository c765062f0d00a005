// Package gunz inspects gzip (RFC 1952) stream headers.
//
// Only header metadata is decoded: the package stops right before the
// compressed payload, performs no decompression and does not verify
// any checksum it reads.
package gunz

import (
	"io"

	"github.com/go-faster/errors"

	"github.com/go-faster/gunz/proto"
)

// ReadHeader decodes gzip header from r.
//
// Reading is buffered, so r may be consumed past the header; when the
// payload position matters, decode via Header.Decode and keep using
// the same proto.Reader.
func ReadHeader(r io.Reader) (*Header, error) {
	var h Header
	if err := h.Decode(proto.NewReader(r)); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return &h, nil
}
