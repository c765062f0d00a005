package proto

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	var b Buffer
	b.PutByte(0x1f)
	b.PutUInt16(0x1234)
	b.PutUInt32(0xdeadbeef)
	b.PutCString("go")
	b.PutRaw([]byte{0xff})
	require.Equal(t, []byte{
		0x1f,
		0x34, 0x12,
		0xef, 0xbe, 0xad, 0xde,
		'g', 'o', 0x00,
		0xff,
	}, b.Buf)

	b.Reset()
	require.Empty(t, b.Buf)
}

func TestBufferReader(t *testing.T) {
	var b Buffer
	b.PutUInt16(0xcafe)
	b.PutCString("x")

	r := b.Reader()
	v, err := r.UInt16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xcafe), v)

	s, err := r.CString()
	require.NoError(t, err)
	require.Equal(t, []byte("x"), s)
}

func TestBufferRead(t *testing.T) {
	var b Buffer
	b.PutRaw([]byte{0x01, 0x02, 0x03})

	data, err := io.ReadAll(&b)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, data)

	n, err := b.Read(make([]byte, 1))
	require.Zero(t, n)
	require.ErrorIs(t, err, io.EOF)
}
