// Package idhash wraps xxHash64 for the two ambient, off-wire convenience
// helpers this module exposes: deriving a uint32 object id from a
// human-readable name, and fingerprinting an encoded frame for log
// correlation. Neither value is ever transmitted; both are purely local
// conveniences.
package idhash

import "github.com/cespare/xxhash/v2"

// ObjectID derives a stable uint32 object identifier from a name by
// truncating an xxHash64 digest. Collisions are possible in the 32-bit
// space; callers that need collision detection must track assigned ids
// themselves — this package does no collision tracking.
func ObjectID(name string) uint32 {
	return uint32(xxhash.Sum64String(name)) //nolint:gosec
}

// Digest returns the xxHash64 fingerprint of data, used to fingerprint an
// encoded frame for structured-logging correlation or archive indexing. It
// is never part of any wire layout.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
