package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveFile(t *testing.T) {
	root := t.TempDir()
	name := filepath.Join(root, "a", "b", "c.txt")

	err := SaveFile(name, []byte("hello"))
	assert.NoError(t, err)
	assert.True(t, IsDir(filepath.Join(root, "a", "b")))
	assert.Equal(t, int64(5), FileSize(name))
}

func TestIsDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f")
	assert.NoError(t, os.WriteFile(file, nil, 0644))

	assert.True(t, IsDir(root))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(root, "missing")))
	assert.Equal(t, int64(-1), FileSize(filepath.Join(root, "missing")))
}
