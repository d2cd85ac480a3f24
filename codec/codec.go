package codec

import (
	"fmt"
	"math"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/endian"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/errs"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/wire"
)

// wireEndian is the byte order of every field on the wire. The wire
// protocol is fixed little-endian regardless of host architecture.
var wireEndian = endian.GetLittleEndianEngine()

// EncodedSize returns the exact byte length that Encode(op) will produce.
// It is not an upper bound: callers that pre-allocate buffers for batches
// rely on this being exact.
func EncodedSize(op Operation) int {
	switch op.Tag {
	case wire.TagMove, wire.TagRotate, wire.TagScale:
		return wire.HeaderSize + wire.MoveRotateScaleSize
	case wire.TagPlace:
		return wire.HeaderSize + wire.PlaceSize
	case wire.TagRemove:
		return wire.HeaderSize + wire.RemoveSize
	case wire.TagBatchMove, wire.TagBatchRotate:
		return wire.HeaderSize + wire.BatchCountSize + len(op.Items)*wire.BatchItemSize
	default:
		return wire.HeaderSize
	}
}

// Encode allocates a buffer of exactly EncodedSize(op) bytes and writes op
// into it. The returned buffer is owned by the caller.
func Encode(op Operation) []byte {
	buf := make([]byte, EncodedSize(op))
	EncodeInto(buf, 0, op)

	return buf
}

// EncodeInto writes op into view starting at offset and returns the first
// unused offset. view must have at least offset+EncodedSize(op) bytes;
// callers that pre-size a batch buffer via EncodedSize satisfy this by
// construction. Used by the batch framer to pack many operations into one
// buffer without an intermediate allocation per operation.
func EncodeInto(view []byte, offset int, op Operation) int {
	off := writeHeader(view, offset, op)

	switch op.Tag {
	case wire.TagMove, wire.TagRotate, wire.TagScale:
		off = writeVec3(view, off, op.Vec)
	case wire.TagPlace:
		view[off] = op.FurnitureType
		off++
		off = writeVec3(view, off, op.Pos)
		off = writeVec3(view, off, op.Rot)
	case wire.TagRemove:
		// no payload
	case wire.TagBatchMove, wire.TagBatchRotate:
		wireEndian.PutUint16(view[off:], uint16(len(op.Items))) //nolint:gosec
		off += wire.BatchCountSize
		for _, item := range op.Items {
			wireEndian.PutUint32(view[off:], item.ObjectID)
			off += 4
			off = writeVec3(view, off, item.Vec)
		}
	}

	return off
}

func writeHeader(view []byte, offset int, op Operation) int {
	off := offset
	view[off] = byte(op.Tag)
	off++

	wireEndian.PutUint64(view[off:], op.HLC.ToUint64())
	off += 8

	objectID := op.ObjectID
	if op.Tag == wire.TagBatchMove || op.Tag == wire.TagBatchRotate {
		// Reserved field: tolerate a non-zero value on decode, but always
		// produce zero when encoding.
		objectID = 0
	}
	wireEndian.PutUint32(view[off:], objectID)
	off += 4

	return off
}

func writeVec3(view []byte, offset int, v [3]float32) int {
	off := offset
	for _, f := range v {
		wireEndian.PutUint32(view[off:], math.Float32bits(f))
		off += 4
	}

	return off
}

func readVec3(view []byte, offset int) ([3]float32, int) {
	var v [3]float32
	off := offset
	for i := range v {
		v[i] = math.Float32frombits(wireEndian.Uint32(view[off:]))
		off += 4
	}

	return v, off
}

// Decode decodes exactly one operation starting at offset 0 of data.
func Decode(data []byte) (Operation, error) {
	op, _, err := DecodeAt(data, 0)

	return op, err
}

// DecodeAt decodes one operation starting at offset and reports how many
// bytes were consumed. Used by the batch framer to walk a frame's
// concatenated operations without slicing per item up front.
func DecodeAt(view []byte, offset int) (Operation, int, error) {
	if len(view)-offset < wire.HeaderSize {
		return Operation{}, 0, fmt.Errorf("%w: need %d header bytes at offset %d, have %d",
			errs.ErrInsufficientBytes, wire.HeaderSize, offset, len(view)-offset)
	}

	tag := wire.Tag(view[offset])
	if !tag.Valid() {
		return Operation{}, 0, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownOperationKind, view[offset])
	}

	hlcRaw := wireEndian.Uint64(view[offset+1:])
	objectID := wireEndian.Uint32(view[offset+9:])

	op := Operation{
		Tag:      tag,
		HLC:      hlc.FromUint64(hlcRaw),
		ObjectID: objectID,
	}

	off := offset + wire.HeaderSize

	switch tag {
	case wire.TagMove, wire.TagRotate, wire.TagScale:
		if len(view)-off < wire.MoveRotateScaleSize {
			return Operation{}, 0, insufficientErr(wire.MoveRotateScaleSize, len(view)-off)
		}
		op.Vec, off = readVec3(view, off)

	case wire.TagPlace:
		if len(view)-off < wire.PlaceSize {
			return Operation{}, 0, insufficientErr(wire.PlaceSize, len(view)-off)
		}
		op.FurnitureType = view[off]
		off++
		op.Pos, off = readVec3(view, off)
		op.Rot, off = readVec3(view, off)

	case wire.TagRemove:
		// no payload

	case wire.TagBatchMove, wire.TagBatchRotate:
		if len(view)-off < wire.BatchCountSize {
			return Operation{}, 0, insufficientErr(wire.BatchCountSize, len(view)-off)
		}
		count := int(wireEndian.Uint16(view[off:]))
		off += wire.BatchCountSize

		need := count * wire.BatchItemSize
		if len(view)-off < need {
			return Operation{}, 0, insufficientErr(need, len(view)-off)
		}

		items := make([]BatchItem, count)
		for i := range items {
			items[i].ObjectID = wireEndian.Uint32(view[off:])
			off += 4
			items[i].Vec, off = readVec3(view, off)
		}
		op.Items = items
	}

	return op, off - offset, nil
}

func insufficientErr(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInsufficientBytes, need, have)
}
