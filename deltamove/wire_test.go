package deltamove

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/errs"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
)

func TestCompressedMoveFullRoundTrip(t *testing.T) {
	m := CompressedMove{
		ObjectID: 42,
		HLC:      hlc.Timestamp{WallMs: 1700000000000, Counter: 9},
		IsDelta:  false,
		Full:     [3]float32{1.5, -2.25, 0},
	}

	buf := Encode(m)
	require.Len(t, buf, 25)
	require.Equal(t, byte(0), buf[0])

	decoded, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestCompressedMoveDeltaRoundTrip(t *testing.T) {
	m := CompressedMove{
		ObjectID: 7,
		HLC:      hlc.Timestamp{WallMs: 500, Counter: 1},
		IsDelta:  true,
		Delta:    [3]int16{100, -200, 32767},
	}

	buf := Encode(m)
	require.Len(t, buf, 19)
	require.Equal(t, byte(0x03), buf[0])

	decoded, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestDecodeCompressedMoveInsufficientBytes(t *testing.T) {
	_, err := Decode([]byte{0, 1, 2})
	require.ErrorIs(t, err, errs.ErrInsufficientBytes)

	full := Encode(CompressedMove{Full: [3]float32{1, 2, 3}})
	_, err = Decode(full[:len(full)-1])
	require.ErrorIs(t, err, errs.ErrInsufficientBytes)
}
