package deltamove

import (
	"fmt"
	"math"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/endian"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/errs"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/wire"
)

var wireEndian = endian.GetLittleEndianEngine()

// flagDelta and flagRelative are always set together for a delta move and
// cleared together for a full move; they are kept as two distinct bits
// because the wire format defines them that way, not because this package
// ever sets them independently.
const (
	flagDelta    = 0x01
	flagRelative = 0x02
)

// CompressedMove is the binary layout of one compressed move, distinct from
// the codec's Move operation: 1 byte flags, 4 byte object id, 8 byte HLC,
// then either three float32 absolutes (full, 25 bytes total) or three
// int16 deltas scaled by Scale (delta, 19 bytes total).
type CompressedMove struct {
	ObjectID uint32
	HLC      hlc.Timestamp
	IsDelta  bool
	Full     [3]float32 // valid when !IsDelta
	Delta    [3]int16   // valid when IsDelta
}

// EncodedSize returns the exact byte length Encode will produce for move:
// wire.CompressedMoveDeltaSize (19) or wire.CompressedMoveFullSize (25).
func (m CompressedMove) EncodedSize() int {
	if m.IsDelta {
		return wire.CompressedMoveDeltaSize
	}

	return wire.CompressedMoveFullSize
}

// Encode writes the binary layout of m to a newly allocated buffer.
func Encode(m CompressedMove) []byte {
	buf := make([]byte, m.EncodedSize())

	flags := byte(0)
	if m.IsDelta {
		flags = flagDelta | flagRelative
	}
	buf[0] = flags

	wireEndian.PutUint32(buf[1:], m.ObjectID)
	wireEndian.PutUint64(buf[5:], m.HLC.ToUint64())

	off := 13
	if m.IsDelta {
		for _, d := range m.Delta {
			wireEndian.PutUint16(buf[off:], uint16(d)) //nolint:gosec
			off += 2
		}
	} else {
		for _, f := range m.Full {
			wireEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}

	return buf
}

// Decode parses the binary layout of a compressed move from data.
func Decode(data []byte) (CompressedMove, error) {
	const minHeader = 13
	if len(data) < minHeader {
		return CompressedMove{}, fmt.Errorf("%w: need %d header bytes, have %d", errs.ErrInsufficientBytes, minHeader, len(data))
	}

	flags := data[0]
	isDelta := flags&flagDelta != 0

	m := CompressedMove{
		ObjectID: wireEndian.Uint32(data[1:]),
		HLC:      hlc.FromUint64(wireEndian.Uint64(data[5:])),
		IsDelta:  isDelta,
	}

	if isDelta {
		if len(data) < wire.CompressedMoveDeltaSize {
			return CompressedMove{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInsufficientBytes, wire.CompressedMoveDeltaSize, len(data))
		}
		off := minHeader
		for i := range m.Delta {
			m.Delta[i] = int16(wireEndian.Uint16(data[off:])) //nolint:gosec
			off += 2
		}

		return m, nil
	}

	if len(data) < wire.CompressedMoveFullSize {
		return CompressedMove{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInsufficientBytes, wire.CompressedMoveFullSize, len(data))
	}
	off := minHeader
	for i := range m.Full {
		m.Full[i] = math.Float32frombits(wireEndian.Uint32(data[off:]))
		off += 4
	}

	return m, nil
}
