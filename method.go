package gunz

import "fmt"

// Method is the CM byte of gzip header. The value is observed
// verbatim: the decoder accepts and reports any byte.
type Method byte

// MethodDeflate is the only compression method defined by RFC 1952.
const MethodDeflate Method = 8

func (m Method) String() string {
	if m == MethodDeflate {
		return "deflate"
	}
	return fmt.Sprintf("Method(0x%02x)", byte(m))
}
