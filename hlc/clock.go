// Package hlc implements a hybrid logical clock that hands out 64-bit
// timestamps with strict local monotonicity and causal merge on receive.
//
// A Clock is parameterized by a WallClock source so tests can drive it with
// a fake instead of the real wall clock. Each Clock instance is owned by
// exactly one producing peer for the peer's lifetime; it is not internally
// synchronized, matching the single-writer state model the rest of this
// module uses for the delta compressor.
package hlc

// WallClock supplies the current physical time in milliseconds since the
// Unix epoch. Production code uses SystemWallClock; tests inject a fake
// that returns a fixed or scripted sequence of values.
type WallClock interface {
	NowMillis() uint64
}

// Timestamp is a hybrid logical clock value: a 48-bit wall-clock millisecond
// count paired with a 16-bit logical counter. Comparison is lexicographic on
// (WallMs, Counter).
type Timestamp struct {
	WallMs  uint64 // low 48 bits significant
	Counter uint16
}

// Compare returns -1, 0, or 1 as t is less than, equal to, or greater than
// other, under lexicographic (WallMs, Counter) order.
func (t Timestamp) Compare(other Timestamp) int {
	if t.WallMs != other.WallMs {
		if t.WallMs < other.WallMs {
			return -1
		}

		return 1
	}

	switch {
	case t.Counter < other.Counter:
		return -1
	case t.Counter > other.Counter:
		return 1
	default:
		return 0
	}
}

// Less reports whether t sorts strictly before other.
func (t Timestamp) Less(other Timestamp) bool {
	return t.Compare(other) < 0
}

// ToUint64 packs the timestamp into a single 64-bit value: WallMs occupies
// the high 48 bits, Counter the low 16. This encoding preserves comparison
// order: if t1.Less(t2) then t1.ToUint64() < t2.ToUint64().
func (t Timestamp) ToUint64() uint64 {
	return (t.WallMs << 16) | uint64(t.Counter)
}

// FromUint64 unpacks a 64-bit value produced by ToUint64 back into a
// Timestamp.
func FromUint64(v uint64) Timestamp {
	return Timestamp{
		WallMs:  v >> 16,
		Counter: uint16(v & 0xFFFF), //nolint:gosec
	}
}

const maxCounter = 0xFFFF

// Clock produces hybrid logical clock timestamps for one producing peer.
// Not safe for concurrent use; callers needing cross-goroutine access must
// provide their own external lock.
type Clock struct {
	wall WallClock
	cur  Timestamp
}

// NewClock creates a Clock backed by the given wall-clock source.
func NewClock(wall WallClock) *Clock {
	return &Clock{wall: wall}
}

// Tick produces the next local timestamp.
//
// If the physical clock has advanced past the clock's current wall-ms, the
// wall-ms jumps forward and the counter resets to 0. Otherwise the counter
// increments, rolling the wall-ms forward by one millisecond on overflow.
// This guarantees strict monotonicity even when the physical clock is
// stuck or moves backward.
func (c *Clock) Tick() Timestamp {
	p := c.wall.NowMillis()

	if p > c.cur.WallMs {
		c.cur.WallMs = p
		c.cur.Counter = 0
	} else {
		c.advanceCounter()
	}

	return c.cur
}

// Receive merges a remote timestamp into the clock's state and returns the
// resulting local timestamp. The merged result is always >= both the
// clock's previous value and remote, preserving causality: any timestamp
// this clock hands out after observing remote will compare greater than
// remote.
func (c *Clock) Receive(remote Timestamp) Timestamp {
	p := c.wall.NowMillis()

	maxWall := p
	if c.cur.WallMs > maxWall {
		maxWall = c.cur.WallMs
	}
	if remote.WallMs > maxWall {
		maxWall = remote.WallMs
	}

	// Counter is computed in a 32-bit field so that a rollover past 0xFFFF
	// is observable before it gets truncated into the 16-bit Timestamp.
	var nextCounter uint32

	switch {
	case p > c.cur.WallMs && p > remote.WallMs:
		nextCounter = 0
	case remote.WallMs > c.cur.WallMs:
		nextCounter = uint32(remote.Counter) + 1
	case c.cur.WallMs > remote.WallMs:
		nextCounter = uint32(c.cur.Counter) + 1
	default:
		nextCounter = uint32(max(c.cur.Counter, remote.Counter)) + 1
	}

	c.cur.WallMs = maxWall
	c.cur.Counter = uint16(nextCounter) //nolint:gosec

	if nextCounter > maxCounter {
		c.cur.WallMs++
		c.cur.Counter = 0
	}

	return c.cur
}

func (c *Clock) advanceCounter() {
	if c.cur.Counter == maxCounter {
		c.cur.WallMs++
		c.cur.Counter = 0

		return
	}

	c.cur.Counter++
}
