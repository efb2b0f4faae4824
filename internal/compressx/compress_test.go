package compressx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/savevault/internal/common"
)

func TestCompressDecompress_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "text", data: []byte(`{"day":42,"miles":800}`)},
		{name: "repetitive", data: bytes.Repeat([]byte("prairie "), 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := Compress(tt.data)
			require.NoError(t, err)

			got, err := Decompress(compressed, DefaultMaxSize)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestCompress_ActuallyShrinksRepetitiveInput(t *testing.T) {
	data := bytes.Repeat([]byte("oxen and wagon wheels "), 2048)
	compressed, err := Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data)/10)
}

func TestDecompress_EnforcesCap(t *testing.T) {
	// 1 MiB of zeros compresses to nearly nothing; cap below the
	// expanded size must trip without returning data.
	data := make([]byte, 1<<20)
	compressed, err := Compress(data)
	require.NoError(t, err)

	_, err = Decompress(compressed, 1024)
	require.ErrorIs(t, err, common.ErrDecompressionLimit)

	// exactly at the cap is allowed
	got, err := Decompress(compressed, int64(len(data)))
	require.NoError(t, err)
	assert.Len(t, got, len(data))
}

func TestDecompress_RejectsGarbage(t *testing.T) {
	_, err := Decompress([]byte("not a zlib stream"), DefaultMaxSize)
	require.Error(t, err)
}
