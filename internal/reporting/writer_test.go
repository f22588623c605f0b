package reporting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "supply.csv")

	require.NoError(t, WriteFileAtomic(path, []byte("first\r\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\r\n", string(data))

	// Overwrite replaces the whole file.
	require.NoError(t, WriteFileAtomic(path, []byte("second\r\n")))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\r\n", string(data))

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "supply.csv", entries[0].Name())
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "supply.csv"), []byte("x"))
	assert.Error(t, err)
}
