package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagValid(t *testing.T) {
	for tag := TagMove; tag <= TagBatchRotate; tag++ {
		require.True(t, tag.Valid())
	}

	require.False(t, Tag(0x00).Valid())
	require.False(t, Tag(0x08).Valid())
}

func TestTagString(t *testing.T) {
	require.Equal(t, "Move", TagMove.String())
	require.Equal(t, "BatchRotate", TagBatchRotate.String())
	require.Equal(t, "Unknown", Tag(0xFF).String())
}
