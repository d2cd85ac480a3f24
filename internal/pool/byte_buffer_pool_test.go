package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBufferBytes(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	bb.MustWrite([]byte("hello"))

	got := bb.Bytes()

	assert.Equal(t, []byte("hello"), got)
	assert.True(t, &bb.B[0] == &got[0], "Bytes should return the same underlying slice")
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBufferMustWrite(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)

	bb.MustWrite([]byte("foo"))
	bb.MustWrite([]byte("bar"))

	assert.Equal(t, []byte("foobar"), bb.Bytes())
}

func TestByteBufferGrowWithinCapacityIsNoop(t *testing.T) {
	bb := NewByteBuffer(16)
	originalCap := cap(bb.B)

	bb.Grow(8)

	assert.Equal(t, originalCap, cap(bb.B), "Grow should not reallocate when capacity suffices")
}

func TestByteBufferGrowSmallBufferByDefaultIncrement(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.Grow(ScratchBufferDefaultSize + 1)

	assert.GreaterOrEqual(t, cap(bb.B), ScratchBufferDefaultSize+1)
}

func TestByteBufferGrowLargeBufferByQuarter(t *testing.T) {
	bb := NewByteBuffer(8 * ScratchBufferDefaultSize)
	bb.MustWrite(make([]byte, 8*ScratchBufferDefaultSize))
	originalCap := cap(bb.B)

	bb.Grow(1)

	assert.GreaterOrEqual(t, cap(bb.B), originalCap+originalCap/4)
}

func TestByteBufferGrowPreservesExistingData(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("keep"))

	bb.Grow(ScratchBufferDefaultSize)
	bb.MustWrite([]byte("-me"))

	assert.Equal(t, []byte("keep-me"), bb.Bytes())
}
