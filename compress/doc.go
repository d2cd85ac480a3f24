// Package compress provides compression and decompression codecs used by
// the archive package to shrink recorded frame archives at rest.
//
// This package is deliberately never used on the live wire path: the wire
// protocol's own compression non-goal ("compression of the payload beyond
// the delta scheme defined here") refers to the operation payload the codec
// and batch framer produce, not to an optional recording of already-framed
// bytes kept around for replay, crash repro, or load-test fixtures. That
// recording format is free to compress its contents, and this package is
// where that choice lives.
//
// # Supported algorithms
//
//   - None: no compression, useful as a baseline or when archives are
//     already small
//   - Zstd: best compression ratio, moderate speed — the default choice for
//     long-lived session recordings
//   - S2: balanced speed and ratio — useful for archives written under load
//     where recording overhead must stay low
//   - LZ4: fastest decompression — useful when an archive is replayed much
//     more often than it is recorded
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// archive.NewWriter and archive.NewReader both take a Codec; pass
// compress.NewNoOpCompressor() for uncompressed archives.
//
// # Thread safety
//
// All codec implementations here are safe for concurrent use, but an
// archive.Writer/Reader built around one is not (see the archive package
// doc) — share the Codec across archives, not the archive handles
// themselves.
package compress
