package rkv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cqkv/rkv/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ExportImportIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.log")
	indexPath := filepath.Join(dir, "data.idx")

	s := openLoaded(t, path)
	require.NoError(t, s.Insert([]byte("a"), []byte("1")))
	require.NoError(t, s.Insert([]byte("b"), []byte("2")))
	require.NoError(t, s.Update([]byte("a"), []byte("3")))
	require.NoError(t, s.ExportIndex(indexPath))

	data, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	assert.Equal(t, codec.NewCodecImpl().MarshalIndex(s.Index()), data)

	// a fresh store gets its index from the file instead of a replay
	fresh, err := Open(path)
	require.NoError(t, err)
	defer fresh.Close()
	require.NoError(t, fresh.ImportIndex(indexPath))
	assert.Equal(t, s.Index(), fresh.Index())

	value, found, err := fresh.Get([]byte("a"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "3", string(value))

	// exporting again replaces the file
	require.NoError(t, s.Delete([]byte("c")))
	require.NoError(t, s.ExportIndex(indexPath))
	require.NoError(t, fresh.ImportIndex(indexPath))
	assert.Equal(t, 3, fresh.Len())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")
}

func TestStore_ImportIndexErrors(t *testing.T) {
	dir := t.TempDir()
	s := openLoaded(t, filepath.Join(dir, "data.log"))
	require.NoError(t, s.Insert([]byte("a"), []byte("1")))

	err := s.ImportIndex(filepath.Join(dir, "missing.idx"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.idx")
	require.NoError(t, os.WriteFile(bad, []byte{0x05, 0x01}, 0644))
	err = s.ImportIndex(bad)
	assert.True(t, errors.Is(err, ErrInvalidIndex))

	// the index is untouched after a failed import
	assert.Equal(t, map[string]uint64{"a": 0}, s.Index())

	err = s.ExportIndex(filepath.Join(dir, "missing", "data.idx"))
	assert.NotNil(t, err)
}
