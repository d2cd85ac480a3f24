//go:build !nobuild

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// klauspost/compress/zstd decoders and encoders are built for reuse after a
// warmup, so both directions are backed by a pool instead of allocating a
// fresh encoder/decoder per archive record.
var (
	zstdEncoders = sync.Pool{New: newZstdEncoder}
	zstdDecoders = sync.Pool{New: newZstdDecoder}
)

func newZstdEncoder() any {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		panic(fmt.Sprintf("pool: build zstd encoder: %v", err))
	}

	return enc
}

func newZstdDecoder() any {
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		panic(fmt.Sprintf("pool: build zstd decoder: %v", err))
	}

	return dec
}

func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoders.Get().(*zstd.Encoder) //nolint:forcetypeassert
	defer zstdEncoders.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := zstdDecoders.Get().(*zstd.Decoder) //nolint:forcetypeassert
	defer zstdDecoders.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress archive record: %w", err)
	}

	return out, nil
}
