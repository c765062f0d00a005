package gunz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagsHas(t *testing.T) {
	require.True(t, Flags(0x0c).Has(FlagExtra))
	require.True(t, Flags(0x0c).Has(FlagExtra|FlagName))
	require.False(t, Flags(0x08).Has(FlagExtra))
	require.True(t, Flags(0).Has(0))
}

func TestFlagsString(t *testing.T) {
	for _, tt := range []struct {
		flags Flags
		str   string
	}{
		{0, "0"},
		{FlagName, "FNAME"},
		{FlagText | FlagHCRC | FlagExtra | FlagName | FlagComment, "FTEXT|FHCRC|FEXTRA|FNAME|FCOMMENT"},
		{FlagName | Flags(0xe0), "FNAME|0xe0"},
		{Flags(0x80), "0x80"},
	} {
		require.Equal(t, tt.str, tt.flags.String())
	}
}
