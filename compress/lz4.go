package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Compressors pools lz4.Compressor instances, which carry a match-finder
// table worth reusing across archive records instead of rebuilding per call.
var lz4Compressors = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// lz4MaxDecompressedSize bounds how far Decompress will grow its scratch
// buffer while guessing the decompressed size; past this it gives up
// rather than risk unbounded memory use on corrupt input.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	comp, _ := lz4Compressors.Get().(*lz4.Compressor)
	defer lz4Compressors.Put(comp)

	n, err := comp.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress doubles its scratch buffer starting from 4x the compressed
// size (a common expansion ratio for LZ4 block data) until the block fits
// or lz4MaxDecompressedSize is exceeded.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= lz4MaxDecompressedSize; bufSize *= 2 {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
