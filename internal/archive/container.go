// Package archive reads and writes the per-slot container file: a small zip
// with three named entries — plaintext meta, the current encrypted payload,
// and the previous payload kept as backup.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/dkarpov/savevault/internal/common"
	"github.com/dkarpov/savevault/internal/fsx"
)

// Entry names inside a slot container. Lookup is by name; entry order is
// irrelevant.
const (
	MetaEntry    = "meta.json"
	CurrentEntry = "current.enc"
	BackupEntry  = "backup.enc"
)

// maxEntrySize bounds a single entry read. Payload entries are stored
// uncompressed, but the deflated meta entry could still be crafted to
// inflate absurdly; this keeps entry reads bounded regardless.
const maxEntrySize int64 = 64 << 20

// Container performs all archive I/O through an fsx.FS so tests can inject
// faults at any step.
type Container struct {
	fs fsx.FS
}

func New(filesystem fsx.FS) *Container {
	return &Container{fs: filesystem}
}

// ReadEntry returns the raw bytes of one named entry. A missing file is
// common.ErrSlotEmpty; a present file without the entry is
// common.ErrEntryNotFound. Both are normal, reportable conditions.
func (c *Container) ReadEntry(path, name string) ([]byte, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrSlotEmpty
		}
		return nil, fmt.Errorf("read archive %s: %w", path, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", name, err)
		}
		defer rc.Close()
		entry, err := io.ReadAll(io.LimitReader(rc, maxEntrySize))
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", name, err)
		}
		return entry, nil
	}

	return nil, fmt.Errorf("%w: %s", common.ErrEntryNotFound, name)
}

// Write replaces the container at path with one holding meta and current,
// rotating the raw bytes of the previous current entry into backup. The old
// payload is relocated as-is, never re-encrypted. If the existing container
// is unreadable the rotation is skipped: a successful save clears prior
// corruption.
func (c *Container) Write(path string, meta, current []byte) error {
	var backup []byte
	if prev, err := c.ReadEntry(path, CurrentEntry); err == nil {
		backup = prev
	}
	return c.writeAll(path, meta, current, backup)
}

// RewriteMeta replaces only the meta entry, carrying both payload entries
// over byte for byte. Used by rename, which must not touch encrypted data.
func (c *Container) RewriteMeta(path string, meta []byte) error {
	current, err := c.ReadEntry(path, CurrentEntry)
	if err != nil {
		return err
	}
	backup, err := c.ReadEntry(path, BackupEntry)
	if err != nil {
		if !errors.Is(err, common.ErrEntryNotFound) {
			return err
		}
		backup = nil
	}
	return c.writeAll(path, meta, current, backup)
}

// writeAll builds the new container at a temporary path next to the final
// one, then swaps it in. If any step fails, the file previously at path is
// left intact; at worst the temp file dangles.
func (c *Container) writeAll(path string, meta, current, backup []byte) error {
	tmp := path + ".tmp"

	f, err := c.fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}

	if err := writeEntries(f, meta, current, backup); err != nil {
		f.Close()
		c.fs.Remove(tmp)
		return fmt.Errorf("write temp archive: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		c.fs.Remove(tmp)
		return fmt.Errorf("sync temp archive: %w", err)
	}
	if err := f.Close(); err != nil {
		c.fs.Remove(tmp)
		return fmt.Errorf("close temp archive: %w", err)
	}

	if err := c.fs.Rename(tmp, path); err != nil {
		c.fs.Remove(tmp)
		return fmt.Errorf("replace archive: %w", err)
	}
	return nil
}

func writeEntries(w io.Writer, meta, current, backup []byte) error {
	zw := zip.NewWriter(w)

	// Payload entries are encrypted, so already high entropy: store them
	// uncompressed. Meta is plaintext JSON and deflates well.
	if err := addEntry(zw, CurrentEntry, current, zip.Store); err != nil {
		return err
	}
	if backup != nil {
		if err := addEntry(zw, BackupEntry, backup, zip.Store); err != nil {
			return err
		}
	}
	if err := addEntry(zw, MetaEntry, meta, zip.Deflate); err != nil {
		return err
	}
	return zw.Close()
}

func addEntry(zw *zip.Writer, name string, data []byte, method uint16) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
