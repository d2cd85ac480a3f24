package wire

// Fixed byte sizes for the wire format. These are part of the wire contract
// and must not change without a new tag/version.
const (
	HeaderSize          = 13 // tag(1) + hlc(8) + objectId(4)
	MoveRotateScaleSize = 12 // three binary32
	PlaceSize           = 25 // furnitureIndex(1) + six binary32
	RemoveSize          = 0
	BatchItemSize       = 16 // objectId(4) + three binary32
	BatchCountSize      = 2  // uint16 item count

	FrameHeaderSize = 6 // length(4) + count(2)

	// CompressedMoveFullSize is the byte length of a full compressed move:
	// flags(1) + objectId(4) + hlc(8) + three binary32(12).
	CompressedMoveFullSize = 25
	// CompressedMoveDeltaSize is the byte length of a delta compressed
	// move: flags(1) + objectId(4) + hlc(8) + three int16(6).
	CompressedMoveDeltaSize = 19
)
