package gunz

import "fmt"

// OS identifies the filesystem or operating system the stream was
// produced on, per the registry in RFC 1952 section 2.3.1. The value
// is observed verbatim and never validated.
type OS byte

const (
	OSFAT       OS = 0
	OSAmiga     OS = 1
	OSVMS       OS = 2
	OSUnix      OS = 3
	OSVMCMS     OS = 4
	OSAtari     OS = 5
	OSHPFS      OS = 6
	OSMacintosh OS = 7
	OSZSystem   OS = 8
	OSCPM       OS = 9
	OSTOPS20    OS = 10
	OSNTFS      OS = 11
	OSQDOS      OS = 12
	OSRISCOS    OS = 13
	OSUnknown   OS = 255
)

var osNames = map[OS]string{
	OSFAT:       "FAT",
	OSAmiga:     "Amiga",
	OSVMS:       "VMS",
	OSUnix:      "Unix",
	OSVMCMS:     "VM/CMS",
	OSAtari:     "Atari TOS",
	OSHPFS:      "HPFS",
	OSMacintosh: "Macintosh",
	OSZSystem:   "Z-System",
	OSCPM:       "CP/M",
	OSTOPS20:    "TOPS-20",
	OSNTFS:      "NTFS",
	OSQDOS:      "QDOS",
	OSRISCOS:    "Acorn RISCOS",
	OSUnknown:   "unknown",
}

func (o OS) String() string {
	if s, ok := osNames[o]; ok {
		return s
	}
	return fmt.Sprintf("OS(0x%02x)", byte(o))
}
