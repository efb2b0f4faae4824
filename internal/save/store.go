// Package save orchestrates the slot lifecycle: serialize, compress,
// encrypt, rotate, atomically replace on save; decrypt, verify, inflate,
// decode with backup fallback on load.
//
// A Store is constructed explicitly and passed to whatever drives the
// simulation; there is no package-level singleton. Operations are
// synchronous and perform no internal locking beyond the atomic file
// replace — one writer per slot per process is the caller's contract.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dkarpov/savevault/internal/archive"
	"github.com/dkarpov/savevault/internal/common"
	"github.com/dkarpov/savevault/internal/compressx"
	"github.com/dkarpov/savevault/internal/cryptox"
	"github.com/dkarpov/savevault/internal/fsx"
	"github.com/dkarpov/savevault/internal/logging"
	"github.com/dkarpov/savevault/internal/slot"
)

// Store reads and writes slot archives under a single directory.
type Store struct {
	dir       string
	codec     Codec
	fs        fsx.FS
	container *archive.Container
	maxSize   int64
	log       logging.Logger

	// inflate is a seam so tests can count decompressor invocations;
	// production always points at compressx.Decompress.
	inflate func(data []byte, maxSize int64) ([]byte, error)
	now     func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithFS substitutes the filesystem, e.g. a fault-injecting wrapper.
func WithFS(filesystem fsx.FS) Option {
	return func(s *Store) { s.fs = filesystem }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithMaxStateSize overrides the decompression cap.
func WithMaxStateSize(n int64) Option {
	return func(s *Store) { s.maxSize = n }
}

// New builds a Store rooted at dir. The codec belongs to the simulation;
// the store only hands it verified, inflated bytes.
func New(dir string, codec Codec, opts ...Option) *Store {
	s := &Store{
		dir:     dir,
		codec:   codec,
		fs:      fsx.OS{},
		maxSize: compressx.DefaultMaxSize,
		log:     logging.Noop{},
		inflate: compressx.Decompress,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.container = archive.New(s.fs)
	return s
}

func (s *Store) path(sl slot.Slot) string {
	return filepath.Join(s.dir, sl.Filename())
}

// Save writes state into the slot. The previous current payload is rotated
// into backup, and the archive is swapped in atomically: on any failure the
// on-disk archive from before the call is unchanged.
func (s *Store) Save(slotID string, state State, displayName string) error {
	sl, err := slot.Parse(slotID)
	if err != nil {
		return err
	}

	raw, err := state.MarshalState()
	if err != nil {
		return fmt.Errorf("serialize state: %w", err)
	}

	compressed, err := compressx.Compress(raw)
	if err != nil {
		return err
	}

	payload, err := cryptox.Encrypt(compressed, cryptox.DeriveKey(sl.ID()))
	if err != nil {
		return fmt.Errorf("encrypt payload: %w", err)
	}

	sum := state.Summary()
	if displayName == "" {
		displayName = sum.DisplayName
	}
	meta := Meta{
		SaveID:        uuid.NewString(),
		DisplayName:   displayName,
		Day:           sum.Day,
		MilesTraveled: sum.MilesTraveled,
		PartySize:     sum.PartySize,
		SavedAt:       s.now().UTC(),
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode meta: %w", err)
	}

	if err := s.fs.MkdirAll(s.dir, 0o770); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	if err := s.container.Write(s.path(sl), metaJSON, payload); err != nil {
		return err
	}

	s.log.Info("slot saved", "slot", sl.ID(), "day", meta.Day, "bytes", len(payload))
	return nil
}

// Load reads the slot back. The current payload is tried first; on any
// failure the backup is tried the same way. The result distinguishes a
// clean load from a backup recovery, and on total failure carries both
// reasons. An empty slot is reported as common.ErrSlotEmpty without
// attempting the backup.
func (s *Store) Load(slotID string) (State, LoadResult, error) {
	sl, err := slot.Parse(slotID)
	if err != nil {
		return nil, LoadResult{Status: LoadFailed}, err
	}

	key := cryptox.DeriveKey(sl.ID())
	path := s.path(sl)

	state, curErr := s.loadEntry(path, archive.CurrentEntry, key)
	if curErr == nil {
		return state, LoadResult{Status: LoadOK}, nil
	}
	if errors.Is(curErr, common.ErrSlotEmpty) {
		return nil, LoadResult{Status: LoadFailed, CurrentErr: curErr}, curErr
	}

	state, bakErr := s.loadEntry(path, archive.BackupEntry, key)
	if bakErr == nil {
		s.log.Warn("recovered slot from backup, most recent progress may be lost",
			"slot", sl.ID(), "current_error", curErr)
		return state, LoadResult{Status: LoadRecovered, CurrentErr: curErr}, nil
	}

	s.log.Error("slot unrecoverable", "slot", sl.ID(),
		"current_error", curErr, "backup_error", bakErr)
	res := LoadResult{Status: LoadFailed, CurrentErr: curErr, BackupErr: bakErr}
	return nil, res, errors.Join(curErr, bakErr)
}

// loadEntry runs the full read pipeline for one payload entry. The order is
// load-bearing: integrity verification happens inside DecryptAndVerify,
// before any byte reaches the decompressor.
func (s *Store) loadEntry(path, entry string, key []byte) (State, error) {
	payload, err := s.container.ReadEntry(path, entry)
	if err != nil {
		return nil, err
	}

	compressed, err := cryptox.DecryptAndVerify(payload, key)
	if err != nil {
		return nil, err
	}

	raw, err := s.inflate(compressed, s.maxSize)
	if err != nil {
		return nil, err
	}

	state, err := s.codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFormat, err)
	}
	return state, nil
}

// ReadMeta returns the plaintext meta entry. It never derives a key or
// touches ciphertext, so listing slots stays cheap and risk-free.
func (s *Store) ReadMeta(slotID string) (*Meta, error) {
	sl, err := slot.Parse(slotID)
	if err != nil {
		return nil, err
	}

	data, err := s.container.ReadEntry(s.path(sl), archive.MetaEntry)
	if err != nil {
		return nil, err
	}

	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode meta: %w", err)
	}
	return &m, nil
}

// ListAll enumerates the fixed slot domain. Absent or unreadable slots map
// to nil, which pickers render as "empty".
func (s *Store) ListAll() map[string]*Meta {
	out := make(map[string]*Meta, len(slot.IDs))
	for _, id := range slot.IDs {
		m, err := s.ReadMeta(id)
		if err != nil {
			out[id] = nil
			continue
		}
		out[id] = m
	}
	return out
}

// Rename rewrites only the display name in the meta entry; the encrypted
// payloads are carried over byte for byte. The autosave slot is reserved
// and refuses renames.
func (s *Store) Rename(slotID, newName string) error {
	sl, err := slot.Parse(slotID)
	if err != nil {
		return err
	}
	if sl.IsAuto() {
		return common.ErrRenameReserved
	}

	path := s.path(sl)
	data, err := s.container.ReadEntry(path, archive.MetaEntry)
	if err != nil {
		return err
	}

	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode meta: %w", err)
	}
	m.DisplayName = newName

	metaJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode meta: %w", err)
	}
	return s.container.RewriteMeta(path, metaJSON)
}

// Delete removes the slot's archive. Deleting an absent slot succeeds, so
// the operation is idempotent.
func (s *Store) Delete(slotID string) error {
	sl, err := slot.Parse(slotID)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(s.path(sl)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete slot %s: %w", sl.ID(), err)
	}
	return nil
}

// Exists reports whether the slot has an archive on disk.
func (s *Store) Exists(slotID string) (bool, error) {
	sl, err := slot.Parse(slotID)
	if err != nil {
		return false, err
	}
	if _, err := s.fs.Stat(s.path(sl)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat slot %s: %w", sl.ID(), err)
	}
	return true, nil
}
