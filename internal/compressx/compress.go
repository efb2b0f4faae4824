// Package compressx wraps zlib compression for serialized state, with a
// hard cap on the inflated size to shut down decompression-bomb payloads.
package compressx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/dkarpov/savevault/internal/common"
)

// DefaultMaxSize caps how far a payload may inflate: 50 MiB, far above any
// legitimate state snapshot.
const DefaultMaxSize int64 = 50 << 20

// Compress deflates data with zlib at best compression. Save files are
// written rarely and read rarely, so the extra CPU is a fine trade for size.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("init compressor: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("compress state: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress state: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates data, refusing to produce more than maxSize bytes.
// Exceeding the cap returns common.ErrDecompressionLimit without allocating
// further. Callers must only pass data that already passed integrity
// verification; this cap is the defense for the remaining case of a
// legitimately keyed but maliciously constructed payload.
func Decompress(data []byte, maxSize int64) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open compressed state: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("inflate state: %w", err)
	}
	if int64(len(out)) > maxSize {
		return nil, common.ErrDecompressionLimit
	}
	return out, nil
}
