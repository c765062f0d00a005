// Package proto implements gzip (RFC 1952) wire primitives.
package proto

import "encoding/binary"

// All multi-byte integers in a gzip header are little-endian.
var bin = binary.LittleEndian
