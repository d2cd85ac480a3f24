package hlc

import "time"

// SystemWallClock is the production WallClock backed by time.Now.
type SystemWallClock struct{}

var _ WallClock = SystemWallClock{}

// NowMillis returns the current Unix time in milliseconds.
func (SystemWallClock) NowMillis() uint64 {
	return uint64(time.Now().UnixMilli()) //nolint:gosec
}
