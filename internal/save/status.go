package save

// LoadStatus classifies the outcome of a Load.
type LoadStatus int

const (
	// LoadOK: the current payload decrypted, verified and decoded cleanly.
	LoadOK LoadStatus = iota

	// LoadRecovered: the current payload failed but the rotated backup
	// loaded. The most recent progress may be lost; callers should tell
	// the user so instead of presenting it as a clean load.
	LoadRecovered

	// LoadFailed: neither payload loaded. The slot is unrecoverable until
	// it is re-saved or deleted.
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadRecovered:
		return "recovered"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

// LoadResult carries the status plus the per-payload failure reasons, so a
// caller can report both when a slot is fully unrecoverable.
type LoadResult struct {
	Status     LoadStatus
	CurrentErr error
	BackupErr  error
}
