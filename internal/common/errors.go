// Package common defines shared sentinel errors used across the save store.
// Callers should use errors.Is to match these values rather than comparing
// error strings.
package common

import "errors"

var (
	// Validation errors, raised before any filesystem access.
	ErrInvalidSlot = errors.New("invalid slot id")

	// Archive-level conditions. An empty slot is a normal state, not a
	// failure of the store.
	ErrSlotEmpty     = errors.New("slot is empty")
	ErrEntryNotFound = errors.New("archive entry not found")

	// ErrIntegrity covers every way a payload can fail verification:
	// MAC mismatch, truncation, bad cipher padding. The causes are
	// deliberately indistinguishable to the caller.
	ErrIntegrity = errors.New("save data corrupted or tampered")

	// ErrDecompressionLimit is raised only after integrity verification
	// passes, when a payload inflates past the configured cap.
	ErrDecompressionLimit = errors.New("save data exceeds decompressed size limit")

	// ErrFormat means the decrypted bytes do not decode to a valid state.
	ErrFormat = errors.New("save data does not describe a valid state")

	// ErrRenameReserved is returned when renaming the autosave slot.
	ErrRenameReserved = errors.New("reserved slot cannot be renamed")
)
