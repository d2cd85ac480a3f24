package archive

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/batch"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/codec"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/compress"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/wire"
)

// TestArchiveRoundTrip is scenario S7.
func TestArchiveRoundTrip(t *testing.T) {
	frames := [][]byte{
		batch.EncodeBatchFrame([]codec.Operation{
			{Tag: wire.TagMove, ObjectID: 1, Vec: [3]float32{1, 0, 0}},
			{Tag: wire.TagRotate, ObjectID: 2, Vec: [3]float32{0, 1.57, 0}},
			{Tag: wire.TagRemove, ObjectID: 3},
			{Tag: wire.TagPlace, ObjectID: 4, Pos: [3]float32{5, 0, 5}},
		}),
		batch.EncodeBatchFrame(nil),
		batch.EncodeBatchFrame([]codec.Operation{{Tag: wire.TagMove, ObjectID: 9, Vec: [3]float32{1, 1, 1}}}),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, compress.NewZstdCompressor())
	for _, f := range frames {
		require.NoError(t, w.WriteFrame(f))
	}

	r := NewReader(&buf, compress.NewZstdCompressor())
	for i, want := range frames {
		got, _, err := r.ReadFrame()
		require.NoError(t, err, "frame %d", i)
		require.Equal(t, want, got, "frame %d", i)
	}

	_, _, err := r.ReadFrame()
	require.ErrorIs(t, err, io.EOF)
}

func TestArchiveWithNoOpCodec(t *testing.T) {
	frame := batch.EncodeBatchFrame([]codec.Operation{{Tag: wire.TagRemove, ObjectID: 1}})

	var buf bytes.Buffer
	w := NewWriter(&buf, compress.NewNoOpCompressor())
	require.NoError(t, w.WriteFrame(frame))

	r := NewReader(&buf, compress.NewNoOpCompressor())
	got, capturedAt, err := r.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, frame, got)
	require.NotZero(t, capturedAt.WallMs)
}

func TestArchiveCapturedTimestampsAreMonotonic(t *testing.T) {
	frame := batch.EncodeBatchFrame([]codec.Operation{{Tag: wire.TagRemove, ObjectID: 1}})

	var buf bytes.Buffer
	w := NewWriter(&buf, compress.NewS2Compressor())
	require.NoError(t, w.WriteFrame(frame))
	require.NoError(t, w.WriteFrame(frame))
	require.NoError(t, w.WriteFrame(frame))

	r := NewReader(&buf, compress.NewS2Compressor())
	var prev uint64
	for i := 0; i < 3; i++ {
		_, capturedAt, err := r.ReadFrame()
		require.NoError(t, err)
		require.Greater(t, capturedAt.ToUint64(), prev)
		prev = capturedAt.ToUint64()
	}
}
