package wire

import "github.com/codemaker66/trades-hall-omni-twin-sub004/internal/idhash"

// DeriveObjectID derives a stable wire object identifier from a
// human-readable name. This is a convenience for hosts that don't already
// have a uint32 id for an object — it is not part of the wire contract,
// which treats the object identifier as an opaque uint32 assigned however
// the host sees fit.
func DeriveObjectID(name string) uint32 {
	return idhash.ObjectID(name)
}
