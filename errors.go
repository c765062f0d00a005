package gunz

import "github.com/go-faster/errors"

// Decode failure kinds, matched with errors.Is. Every kind is
// terminal: no retry is possible on the same stream and the stream
// position after a failure is unspecified.
var (
	// ErrTruncatedHeader means the stream ended or a read failed
	// before a required header field completed.
	ErrTruncatedHeader = errors.New("truncated header")

	// ErrMagicMismatch means the stream does not start with the
	// gzip identification bytes 0x1f 0x8b.
	ErrMagicMismatch = errors.New("magic mismatch")

	// ErrMalformedExtra means the declared lengths of the FEXTRA
	// subfield list are internally inconsistent.
	ErrMalformedExtra = errors.New("malformed extra field")

	// ErrInvalidText means a name or comment field is not valid
	// UTF-8.
	ErrInvalidText = errors.New("invalid text")
)
