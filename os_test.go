package gunz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSString(t *testing.T) {
	require.Equal(t, "Unix", OSUnix.String())
	require.Equal(t, "VM/CMS", OSVMCMS.String())
	require.Equal(t, "unknown", OSUnknown.String())
	require.Equal(t, "OS(0x42)", OS(0x42).String())
}

func TestMethodString(t *testing.T) {
	require.Equal(t, "deflate", MethodDeflate.String())
	require.Equal(t, "Method(0x42)", Method(0x42).String())
}
