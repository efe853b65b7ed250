package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	fs := NewOSFileSystem()

	assert.True(t, fs.IsDir(dir))
	assert.False(t, fs.IsDir(file))
	assert.False(t, fs.IsDir(filepath.Join(dir, "missing")))
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))

	entries, err := NewOSFileSystem().ReadDir(dir)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, filepath.Join(dir, "a.txt"), entries[0].Path)
	assert.Equal(t, "b", entries[1].Name)
}

func TestReadDir_Missing(t *testing.T) {
	_, err := NewOSFileSystem().ReadDir(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}
