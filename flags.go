package gunz

import (
	"fmt"
	"strings"
)

// Flags is the FLG byte of gzip header. Presence of every optional
// header section is governed solely by its bit here.
type Flags byte

// Header flag bits per RFC 1952.
const (
	FlagText    Flags = 1 << 0 // FTEXT, content hint only, no decode effect
	FlagHCRC    Flags = 1 << 1 // FHCRC, 16-bit header checksum follows
	FlagExtra   Flags = 1 << 2 // FEXTRA, subfield list follows
	FlagName    Flags = 1 << 3 // FNAME, original file name follows
	FlagComment Flags = 1 << 4 // FCOMMENT, comment follows

	flagsReserved Flags = 0xe0
)

// Has reports whether all bits of v are set in f.
func (f Flags) Has(v Flags) bool { return f&v == v }

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, b := range []struct {
		flag Flags
		name string
	}{
		{FlagText, "FTEXT"},
		{FlagHCRC, "FHCRC"},
		{FlagExtra, "FEXTRA"},
		{FlagName, "FNAME"},
		{FlagComment, "FCOMMENT"},
	} {
		if f.Has(b.flag) {
			parts = append(parts, b.name)
		}
	}
	if v := f & flagsReserved; v != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", byte(v)))
	}
	return strings.Join(parts, "|")
}
