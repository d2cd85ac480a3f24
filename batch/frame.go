// Package batch packs a sequence of codec operations into one
// self-describing frame and splits a frame back into a sequence. A frame is
// the unit of network send: one 6-byte header (total length + operation
// count) followed by the concatenated encoding of each operation.
package batch

import (
	"fmt"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/codec"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/endian"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/errs"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/wire"
)

var wireEndian = endian.GetLittleEndianEngine()

// EncodeBatchFrame packs ops into a single buffer: a 6-byte header (total
// length including the header, then operation count) followed by each
// operation's encoding in order. The total size is computed once and one
// buffer is allocated; EncodeInto then writes each operation directly into
// its final position, with no intermediate per-operation allocation.
func EncodeBatchFrame(ops []codec.Operation) []byte {
	total := wire.FrameHeaderSize
	for _, op := range ops {
		total += codec.EncodedSize(op)
	}

	buf := make([]byte, total)
	wireEndian.PutUint32(buf[0:], uint32(total)) //nolint:gosec
	wireEndian.PutUint16(buf[4:], uint16(len(ops))) //nolint:gosec

	off := wire.FrameHeaderSize
	for _, op := range ops {
		off = codec.EncodeInto(buf, off, op)
	}

	return buf
}

// DecodeBatchFrame verifies the length prefix matches the buffer's actual
// length, then decodes each operation in order. Either every operation in
// the frame is returned, or an error is returned and no partial result is
// delivered.
func DecodeBatchFrame(frame []byte) ([]codec.Operation, error) {
	declared, err := PeekFrameLength(frame)
	if err != nil {
		return nil, err
	}

	if declared != len(frame) {
		return nil, fmt.Errorf("%w: declared %d, buffer is %d bytes", errs.ErrFrameLengthMismatch, declared, len(frame))
	}

	count, err := PeekBatchCount(frame)
	if err != nil {
		return nil, err
	}

	ops := make([]codec.Operation, 0, count)
	off := wire.FrameHeaderSize
	for i := 0; i < count; i++ {
		op, n, err := codec.DecodeAt(frame, off)
		if err != nil {
			return nil, fmt.Errorf("operation %d at offset %d: %w", i, off, err)
		}

		ops = append(ops, op)
		off += n
	}

	return ops, nil
}

// PeekFrameLength reads only the 4-byte length prefix, for transport
// framing that needs to know when a full frame has arrived without
// decoding anything.
func PeekFrameLength(frame []byte) (int, error) {
	if len(frame) < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes for length prefix, have %d", errs.ErrInsufficientBytes, len(frame))
	}

	return int(wireEndian.Uint32(frame[0:])), nil
}

// PeekBatchCount reads only the 2-byte operation count, for instrumentation
// that wants batch size without a full decode. Unlike DecodeBatchFrame,
// this does not require the length prefix to match the buffer's actual
// length — only that the first 6 header bytes are present — so
// instrumentation can inspect a partially-received frame's declared
// operation count before the rest of the frame has arrived.
func PeekBatchCount(frame []byte) (int, error) {
	if len(frame) < wire.FrameHeaderSize {
		return 0, fmt.Errorf("%w: need %d header bytes, have %d", errs.ErrInsufficientBytes, wire.FrameHeaderSize, len(frame))
	}

	return int(wireEndian.Uint16(frame[4:])), nil
}
