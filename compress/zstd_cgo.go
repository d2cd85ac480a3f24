//go:build nobuild

// This variant is gated off by the nobuild tag: gozstd links libzstd via
// cgo, which most archive readers/writers don't have available. It's kept
// as the cgo-accelerated alternative to zstd_pure.go, enabled by flipping
// the build tag where a cgo toolchain is known to be present.
package compress

import "github.com/valyala/gozstd"

const zstdCgoCompressionLevel = 3

func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdCgoCompressionLevel), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
