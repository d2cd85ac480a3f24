package batch

import "github.com/codemaker66/trades-hall-omni-twin-sub004/internal/idhash"

// Digest returns an xxHash64 fingerprint of a frame's bytes, for structured
// logging ("dropped frame digest=%x") and archive indexing. It is not part
// of the wire layout and is never transmitted as part of a frame.
func Digest(frame []byte) uint64 {
	return idhash.Digest(frame)
}
