package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpRoundTrip(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("frame payload for archival testing")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestZstdRoundTrip(t *testing.T) {
	c := NewZstdCompressor()
	data := []byte("a batch frame that repeats repeats repeats repeats for compressibility")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestS2RoundTrip(t *testing.T) {
	c := NewS2Compressor()
	data := []byte("a batch frame that repeats repeats repeats repeats for compressibility")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestLZ4RoundTrip(t *testing.T) {
	c := NewLZ4Compressor()
	data := []byte("a batch frame that repeats repeats repeats repeats for compressibility")

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestCreateCodecUnknownAlgorithm(t *testing.T) {
	_, err := CreateCodec(Algorithm(99), "archive")
	require.Error(t, err)
}

func TestGetCodecReturnsBuiltins(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmNone, AlgorithmZstd, AlgorithmS2, AlgorithmLZ4} {
		codec, err := GetCodec(alg)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(Algorithm(99))
	require.Error(t, err)
}

func TestAlgorithmString(t *testing.T) {
	require.Equal(t, "None", AlgorithmNone.String())
	require.Equal(t, "Zstd", AlgorithmZstd.String())
	require.Equal(t, "S2", AlgorithmS2.String())
	require.Equal(t, "LZ4", AlgorithmLZ4.String())
	require.Equal(t, "Unknown", Algorithm(99).String())
}
