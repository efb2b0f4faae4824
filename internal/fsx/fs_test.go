package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_RenameReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "new.tmp")
	newPath := filepath.Join(dir, "final.sav")

	require.NoError(t, os.WriteFile(oldPath, []byte("new contents"), 0o660))
	require.NoError(t, os.WriteFile(newPath, []byte("old contents"), 0o660))

	require.NoError(t, OS{}.Rename(oldPath, newPath))

	got, err := OS{}.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("new contents"), got)

	_, err = OS{}.Stat(oldPath)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOS_CreateWriteSyncClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")

	f, err := OS{}.Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	got, err := OS{}.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestOS_MkdirAllIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, OS{}.MkdirAll(dir, 0o770))
	require.NoError(t, OS{}.MkdirAll(dir, 0o770))

	fi, err := OS{}.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
