package deltamove

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
)

// TestDragCompression is scenario S6.
func TestDragCompression(t *testing.T) {
	c := NewCompressor()
	t0 := hlc.Timestamp{WallMs: 1, Counter: 0}
	t1 := hlc.Timestamp{WallMs: 1, Counter: 1}
	t2 := hlc.Timestamp{WallMs: 1, Counter: 2}

	first, suppressed := c.Compress(1, 5.0, 0, 10.0, t0)
	require.False(t, suppressed)
	require.False(t, first.IsDelta)
	require.Len(t, Encode(first), 25)

	second, suppressed := c.Compress(1, 5.1, 0, 10.2, t1)
	require.False(t, suppressed)
	require.True(t, second.IsDelta)
	require.Equal(t, [3]int16{100, 0, 200}, second.Delta)
	require.Len(t, Encode(second), 19)

	_, suppressed = c.Compress(1, 5.1001, 0, 10.2001, t2)
	require.True(t, suppressed)
	require.Equal(t, position{5.1, 0, 10.2}, c.last[1])

	recv := NewCompressor()
	x, y, z := recv.Decompress(first)
	require.InDelta(t, 5.0, x, 1e-6)
	require.InDelta(t, 0.0, y, 1e-6)
	require.InDelta(t, 10.0, z, 1e-6)

	x, y, z = recv.Decompress(second)
	require.InDelta(t, 5.1, x, 1e-3)
	require.InDelta(t, 0.0, y, 1e-3)
	require.InDelta(t, 10.2, z, 1e-3)
}

func TestCompressFallsBackToFullBeyondRange(t *testing.T) {
	c := NewCompressor()
	ts := hlc.Timestamp{WallMs: 1}

	_, suppressed := c.Compress(1, 0, 0, 0, ts)
	require.False(t, suppressed)

	move, suppressed := c.Compress(1, 100, 0, 0, ts)
	require.False(t, suppressed)
	require.False(t, move.IsDelta)
	require.Equal(t, [3]float32{100, 0, 0}, move.Full)
}

func TestForgetForcesFullOnNextEmit(t *testing.T) {
	c := NewCompressor()
	ts := hlc.Timestamp{WallMs: 1}

	c.Compress(1, 1, 1, 1, ts)
	c.Forget(1)

	move, suppressed := c.Compress(1, 1.0001, 1, 1, ts)
	require.False(t, suppressed)
	require.False(t, move.IsDelta)
}

func TestClearDropsAllTrackedObjects(t *testing.T) {
	c := NewCompressor()
	ts := hlc.Timestamp{WallMs: 1}
	c.Compress(1, 1, 1, 1, ts)
	c.Compress(2, 2, 2, 2, ts)
	c.Clear()

	require.Empty(t, c.last)
}

func TestDecompressDeltaDefaultsToZeroOrigin(t *testing.T) {
	recv := NewCompressor()
	move := CompressedMove{ObjectID: 9, IsDelta: true, Delta: [3]int16{1000, -500, 0}}

	x, y, z := recv.Decompress(move)
	require.InDelta(t, 1.0, x, 1e-6)
	require.InDelta(t, -0.5, y, 1e-6)
	require.InDelta(t, 0.0, z, 1e-6)
}
