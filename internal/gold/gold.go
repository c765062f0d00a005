// Package gold implements golden files.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// update reports whether golden files update is requested.
var update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// Bytes checks golden file with provided name against data, writing
// data to the file when -update is set.
func Bytes(t testing.TB, data []byte, name ...string) {
	t.Helper()
	require.NotEmpty(t, name, "golden file name")

	name[len(name)-1] += ".raw"
	p := Path(name...)
	if update {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, data, 0o644))
	}

	expected, err := os.ReadFile(p)
	require.NoError(t, err)
	require.True(t, bytes.Equal(expected, data), "golden file %s mismatch", p)
}
