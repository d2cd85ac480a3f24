// Package codec provides the byte-exact, bi-directional translation between
// Operation values and wire buffers described by the spatial editor's
// mutation protocol. All multi-byte integers and floats are little-endian;
// this is a hard wire contract regardless of host byte order.
//
// The codec is pure: Encode/EncodedSize/Decode/DecodeAt never block, never
// allocate beyond the buffers they are asked to produce or consume, and
// never touch shared state. It is safe to call from any number of
// goroutines concurrently.
package codec

import (
	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/wire"
)

// BatchItem is one element of a BatchMove or BatchRotate payload: an object
// id paired with three float32 components (dx,dy,dz or rx,ry,rz).
type BatchItem struct {
	ObjectID uint32
	Vec      [3]float32
}

// Operation is the closed, tagged sum of all seven wire operation kinds.
// It is modeled as one flat struct rather than per-kind types plus an
// interface: decode is on the hot path (tens of events per second per peer
// during drag) and a sum-of-structs avoids the heap allocation an interface
// value would force on every decode.
//
// Which fields are meaningful depends on Tag:
//
//	Move, Rotate, Scale: Vec (dx,dy,dz / rx,ry,rz / sx,sy,sz)
//	Place:               FurnitureType, Pos (x,y,z), Rot (rx,ry,rz)
//	Remove:              no payload fields
//	BatchMove, BatchRotate: Items (ObjectID is reserved, must be 0)
//
// Operation values are immutable once constructed; callers must not mutate
// a decoded Operation's Items slice in place if they intend to re-encode it
// and compare against the original bytes.
type Operation struct {
	Tag      wire.Tag
	HLC      hlc.Timestamp
	ObjectID uint32

	Vec [3]float32

	FurnitureType uint8
	Pos           [3]float32
	Rot           [3]float32

	Items []BatchItem
}
