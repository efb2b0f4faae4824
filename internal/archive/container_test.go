package archive

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/savevault/internal/common"
	"github.com/dkarpov/savevault/internal/fsx"
)

// faultFS wraps fsx.OS and fails selected operations, to prove the
// replace-or-leave-intact guarantee.
type faultFS struct {
	fsx.OS
	failRename bool
	failCreate bool
}

var errInjected = errors.New("injected fault")

func (f *faultFS) Rename(oldpath, newpath string) error {
	if f.failRename {
		return errInjected
	}
	return f.OS.Rename(oldpath, newpath)
}

func (f *faultFS) Create(path string) (fsx.File, error) {
	if f.failCreate {
		return nil, errInjected
	}
	return f.OS.Create(path)
}

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "slot_0.sav")
}

func TestWriteRead_AllEntries(t *testing.T) {
	c := New(fsx.OS{})
	path := testPath(t)

	meta := []byte(`{"display_name":"first"}`)
	payload := []byte("encrypted-bytes-v1")
	require.NoError(t, c.Write(path, meta, payload))

	gotMeta, err := c.ReadEntry(path, MetaEntry)
	require.NoError(t, err)
	assert.Equal(t, meta, gotMeta)

	gotCurrent, err := c.ReadEntry(path, CurrentEntry)
	require.NoError(t, err)
	assert.Equal(t, payload, gotCurrent)

	// no backup until the second save
	_, err = c.ReadEntry(path, BackupEntry)
	require.ErrorIs(t, err, common.ErrEntryNotFound)
}

func TestWrite_RotatesCurrentIntoBackup(t *testing.T) {
	c := New(fsx.OS{})
	path := testPath(t)

	first := []byte("payload-one")
	second := []byte("payload-two")

	require.NoError(t, c.Write(path, []byte("{}"), first))
	require.NoError(t, c.Write(path, []byte("{}"), second))

	gotCurrent, err := c.ReadEntry(path, CurrentEntry)
	require.NoError(t, err)
	assert.Equal(t, second, gotCurrent)

	// the old current moved into backup byte for byte
	gotBackup, err := c.ReadEntry(path, BackupEntry)
	require.NoError(t, err)
	assert.Equal(t, first, gotBackup)

	// third save drops the oldest payload
	third := []byte("payload-three")
	require.NoError(t, c.Write(path, []byte("{}"), third))
	gotBackup, err = c.ReadEntry(path, BackupEntry)
	require.NoError(t, err)
	assert.Equal(t, second, gotBackup)
}

func TestReadEntry_MissingFileIsSlotEmpty(t *testing.T) {
	c := New(fsx.OS{})
	_, err := c.ReadEntry(testPath(t), CurrentEntry)
	require.ErrorIs(t, err, common.ErrSlotEmpty)
}

func TestRewriteMeta_KeepsPayloadsIntact(t *testing.T) {
	c := New(fsx.OS{})
	path := testPath(t)

	first := []byte("payload-one")
	second := []byte("payload-two")
	require.NoError(t, c.Write(path, []byte(`{"name":"a"}`), first))
	require.NoError(t, c.Write(path, []byte(`{"name":"a"}`), second))

	require.NoError(t, c.RewriteMeta(path, []byte(`{"name":"b"}`)))

	gotMeta, err := c.ReadEntry(path, MetaEntry)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"b"}`), gotMeta)

	gotCurrent, err := c.ReadEntry(path, CurrentEntry)
	require.NoError(t, err)
	assert.Equal(t, second, gotCurrent)

	gotBackup, err := c.ReadEntry(path, BackupEntry)
	require.NoError(t, err)
	assert.Equal(t, first, gotBackup)
}

func TestRewriteMeta_EmptySlot(t *testing.T) {
	c := New(fsx.OS{})
	err := c.RewriteMeta(testPath(t), []byte("{}"))
	require.ErrorIs(t, err, common.ErrSlotEmpty)
}

func TestWrite_FailedReplaceLeavesOriginalIntact(t *testing.T) {
	ffs := &faultFS{}
	c := New(ffs)
	path := testPath(t)

	original := []byte("payload-one")
	require.NoError(t, c.Write(path, []byte("{}"), original))

	ffs.failRename = true
	err := c.Write(path, []byte("{}"), []byte("payload-two"))
	require.ErrorIs(t, err, errInjected)

	// the archive at the final path still holds the first save
	ffs.failRename = false
	got, err := c.ReadEntry(path, CurrentEntry)
	require.NoError(t, err)
	assert.Equal(t, original, got)

	// no temp file left behind
	_, statErr := fsx.OS{}.Stat(path + ".tmp")
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestWrite_FailedCreateLeavesOriginalIntact(t *testing.T) {
	ffs := &faultFS{}
	c := New(ffs)
	path := testPath(t)

	original := []byte("payload-one")
	require.NoError(t, c.Write(path, []byte("{}"), original))

	ffs.failCreate = true
	require.Error(t, c.Write(path, []byte("{}"), []byte("payload-two")))

	ffs.failCreate = false
	got, err := c.ReadEntry(path, CurrentEntry)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestWrite_DanglingTempDoesNotAffectReads(t *testing.T) {
	c := New(fsx.OS{})
	path := testPath(t)

	payload := []byte("payload-one")
	require.NoError(t, c.Write(path, []byte("{}"), payload))

	// simulate an interruption that left a fully written temp file behind
	f, err := fsx.OS{}.Create(path + ".tmp")
	require.NoError(t, err)
	_, err = f.Write([]byte("half-finished next save"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := c.ReadEntry(path, CurrentEntry)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
