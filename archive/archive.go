// Package archive provides an at-rest, length-prefixed container for
// recording a stream of batch frames for later replay — session recording,
// crash repro, and load-test fixtures. It is explicitly not the wire
// protocol: a Writer wraps already-framed bytes with its own record header
// and, if the caller supplies a compress.Codec other than NoOp, whole-frame
// compression. The wire protocol's own compression non-goal governs the
// live operation payload, not this archival format.
package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/compress"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/endian"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/errs"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/internal/pool"
)

// recordHeaderSize is 8 bytes capture-HLC + 4 bytes original length + 4
// bytes stored length.
const recordHeaderSize = 16

var wireEndian = endian.GetLittleEndianEngine()

// Writer appends recorded frames to an io.Writer. A Writer ticks its own
// HLC to stamp each record with a capture time, independent of any HLC
// carried by operations inside the frame. Not safe for concurrent use —
// single-writer, matching the HLC and delta compressor's resource model.
type Writer struct {
	w       io.Writer
	codec   compress.Codec
	clock   *hlc.Clock
	scratch *pool.ByteBuffer
}

// NewWriter creates a Writer that compresses each recorded frame with codec
// before writing it to w. Pass compress.NewNoOpCompressor() for an
// uncompressed archive.
func NewWriter(w io.Writer, codec compress.Codec) *Writer {
	return &Writer{
		w:       w,
		codec:   codec,
		clock:   hlc.NewClock(hlc.SystemWallClock{}),
		scratch: pool.NewByteBuffer(pool.ScratchBufferDefaultSize),
	}
}

// WriteFrame compresses frame and appends one record to the archive.
func (aw *Writer) WriteFrame(frame []byte) error {
	capturedAt := aw.clock.Tick()

	stored, err := aw.codec.Compress(frame)
	if err != nil {
		return fmt.Errorf("compress archive record: %w", err)
	}

	aw.scratch.Reset()
	aw.scratch.Grow(recordHeaderSize + len(stored))

	var hdr [recordHeaderSize]byte
	wireEndian.PutUint64(hdr[0:], capturedAt.ToUint64())
	wireEndian.PutUint32(hdr[8:], uint32(len(frame))) //nolint:gosec
	wireEndian.PutUint32(hdr[12:], uint32(len(stored))) //nolint:gosec

	aw.scratch.MustWrite(hdr[:])
	aw.scratch.MustWrite(stored)

	_, err = aw.w.Write(aw.scratch.Bytes())

	return err
}

// Reader reads frames back out of an archive written by Writer. Not safe
// for concurrent use.
type Reader struct {
	r     io.Reader
	codec compress.Codec
}

// NewReader creates a Reader that decompresses each record with codec,
// which must match the Codec the archive was written with.
func NewReader(r io.Reader, codec compress.Codec) *Reader {
	return &Reader{r: r, codec: codec}
}

// ReadFrame reads and decompresses the next record, returning its captured
// timestamp alongside the reconstructed frame bytes. Returns io.EOF once
// the archive is exhausted; a record whose header is present but whose
// payload is short returns ErrArchiveRecordTruncated.
func (ar *Reader) ReadFrame() (frame []byte, capturedAt hlc.Timestamp, err error) {
	var hdr [recordHeaderSize]byte
	if _, err := io.ReadFull(ar.r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, hlc.Timestamp{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, hlc.Timestamp{}, fmt.Errorf("%w: short record header", errs.ErrArchiveRecordTruncated)
		}

		return nil, hlc.Timestamp{}, err
	}

	capturedAt = hlc.FromUint64(wireEndian.Uint64(hdr[0:]))
	origLen := wireEndian.Uint32(hdr[8:])
	storedLen := wireEndian.Uint32(hdr[12:])

	stored := make([]byte, storedLen)
	if _, err := io.ReadFull(ar.r, stored); err != nil {
		return nil, capturedAt, fmt.Errorf("%w: %v", errs.ErrArchiveRecordTruncated, err)
	}

	frame, err = ar.codec.Decompress(stored)
	if err != nil {
		return nil, capturedAt, fmt.Errorf("decompress archive record: %w", err)
	}

	if uint32(len(frame)) != origLen { //nolint:gosec
		return nil, capturedAt, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrArchiveRecordTruncated, origLen, len(frame))
	}

	return frame, capturedAt, nil
}
