package gunz

import (
	"bytes"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// Headers produced by a real gzip encoder must decode field for field.
func TestReadHeaderGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Name = "data.bin"
	zw.Comment = "nightly dump"
	zw.ModTime = time.Unix(1600000000, 0)
	zw.Extra = []byte{'A', 'p', 0x04, 0x00, 1, 2, 3, 4}
	zw.OS = byte(OSUnix)
	_, err := zw.Write([]byte("hello gzip"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	h, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, MethodDeflate, h.Method)
	require.True(t, h.Flags.Has(FlagExtra|FlagName|FlagComment))
	require.False(t, h.Flags.Has(FlagHCRC))
	require.Equal(t, uint32(1600000000), h.ModTime)
	require.Equal(t, OSUnix, h.OS)
	require.Equal(t, 1, h.ExtraCount)
	require.NotNil(t, h.Name)
	require.Equal(t, "data.bin", *h.Name)
	require.NotNil(t, h.Comment)
	require.Equal(t, "nightly dump", *h.Comment)
	require.Nil(t, h.CRC16)
}

func TestReadHeaderGzipMinimal(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	h, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, MethodDeflate, h.Method)
	require.Nil(t, h.Name)
	require.Nil(t, h.Comment)
	require.Nil(t, h.CRC16)
	require.Zero(t, h.ExtraCount)
}
