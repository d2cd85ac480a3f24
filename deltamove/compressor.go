// Package deltamove implements the per-peer, per-object position tracker
// that exploits temporal locality in drag streams: small moves are emitted
// as 6-byte int16 deltas instead of 12-byte float32 absolutes, and moves
// below a deadzone are suppressed entirely. A mirrored Compressor on the
// receive side reconstructs the absolute position stream.
//
// One Compressor instance belongs to one peer on one side (send or
// receive); it carries mutable per-object state and is not internally
// synchronized, the same single-writer model the hlc package uses.
package deltamove

import (
	"math"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
)

const (
	// Scale is the fixed-point scale factor: 1000 units per metre (1 mm
	// precision). Part of the wire contract for CompressedMove deltas.
	Scale = 1000.0
	// Range is the maximum displacement magnitude, per axis, that still
	// fits in an int16 delta: 32767 / Scale metres.
	Range = 32.767
	// Deadzone is the maximum per-axis magnitude below which a position
	// change is dropped without updating any tracked state.
	Deadzone = 0.0005
)

// Compressor tracks the last known position of each object id it has seen,
// for one peer-side (send or receive). Zero value is not usable; use
// NewCompressor.
type Compressor struct {
	last map[uint32]position
}

type position struct {
	x, y, z float64
}

// NewCompressor creates an empty Compressor with no tracked objects.
func NewCompressor() *Compressor {
	return &Compressor{last: make(map[uint32]position)}
}

// Compress emits a compressed move for objectId at (x,y,z), or reports
// suppressed=true if the change is below the deadzone (in which case the
// tracked position is left unchanged, so the host must not advance its own
// state either — the compressor only updates lastKnown when it emits
// something the peer will also update against).
//
//  1. Untracked object id: record (x,y,z), emit a full move.
//  2. Tracked: compute the displacement from lastKnown.
//  3. max(|dx|,|dy|,|dz|) < Deadzone: suppressed, no state change.
//  4. Otherwise update lastKnown, then emit delta if the displacement fits
//     within Range, else emit full.
func (c *Compressor) Compress(objectID uint32, x, y, z float64, ts hlc.Timestamp) (move CompressedMove, suppressed bool) {
	prev, tracked := c.last[objectID]
	if !tracked {
		c.last[objectID] = position{x, y, z}

		return CompressedMove{
			ObjectID: objectID,
			HLC:      ts,
			IsDelta:  false,
			Full:     [3]float32{float32(x), float32(y), float32(z)},
		}, false
	}

	dx, dy, dz := x-prev.x, y-prev.y, z-prev.z
	maxAbs := maxAbs3(dx, dy, dz)

	if maxAbs < Deadzone {
		return CompressedMove{}, true
	}

	c.last[objectID] = position{x, y, z}

	if maxAbs <= Range {
		return CompressedMove{
			ObjectID: objectID,
			HLC:      ts,
			IsDelta:  true,
			Delta: [3]int16{
				int16(math.Round(dx * Scale)),
				int16(math.Round(dy * Scale)),
				int16(math.Round(dz * Scale)),
			},
		}, false
	}

	return CompressedMove{
		ObjectID: objectID,
		HLC:      ts,
		IsDelta:  false,
		Full:     [3]float32{float32(x), float32(y), float32(z)},
	}, false
}

// Decompress reconstructs the absolute position for move's ObjectID,
// updating the tracked state to match. Callers must deliver moves for a
// given object id in the same order the sender produced them — the
// compressor has no way to detect or correct out-of-order delivery.
func (c *Compressor) Decompress(move CompressedMove) (x, y, z float64) {
	if !move.IsDelta {
		p := position{float64(move.Full[0]), float64(move.Full[1]), float64(move.Full[2])}
		c.last[move.ObjectID] = p

		return p.x, p.y, p.z
	}

	prev := c.last[move.ObjectID] // zero value if absent, per spec
	p := position{
		x: prev.x + float64(move.Delta[0])/Scale,
		y: prev.y + float64(move.Delta[1])/Scale,
		z: prev.z + float64(move.Delta[2])/Scale,
	}
	c.last[move.ObjectID] = p

	return p.x, p.y, p.z
}

// Forget removes objectId's tracked state; the next Compress/Decompress
// call for that id is forced to start from a full move / zero position.
func (c *Compressor) Forget(objectID uint32) {
	delete(c.last, objectID)
}

// Clear drops all tracked state.
func (c *Compressor) Clear() {
	c.last = make(map[uint32]position)
}

func maxAbs3(a, b, c float64) float64 {
	m := math.Abs(a)
	if v := math.Abs(b); v > m {
		m = v
	}
	if v := math.Abs(c); v > m {
		m = v
	}

	return m
}
