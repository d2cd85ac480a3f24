// Package errs defines the sentinel error values shared across the wire
// protocol packages (wire, codec, batch, deltamove, archive).
//
// Callers should compare against these with errors.Is, since every package
// wraps them with fmt.Errorf("%w: ...") to attach positional context (the
// observed byte, the offset, the expected vs actual length).
package errs

import "errors"

var (
	// ErrUnknownFurnitureKind is returned by wire.FurnitureNameToIndex when
	// the given name is not one of the closed set of furniture kinds.
	ErrUnknownFurnitureKind = errors.New("unknown furniture kind")

	// ErrUnknownOperationKind is returned by codec.Decode/DecodeAt when the
	// tag byte does not fall in 0x01..0x07.
	ErrUnknownOperationKind = errors.New("unknown operation kind")

	// ErrInsufficientBytes is returned by any decode/peek routine when the
	// input buffer is shorter than required for the next read.
	ErrInsufficientBytes = errors.New("insufficient bytes")

	// ErrFrameLengthMismatch is returned by batch.DecodeBatchFrame when the
	// declared length prefix does not equal the buffer's actual length.
	ErrFrameLengthMismatch = errors.New("frame length mismatch")

	// ErrReservedFieldNonZero is returned by codec.ValidateHeader (an
	// opt-in strict check, never by Decode/DecodeAt themselves) when a
	// batch operation's reserved header object id is non-zero.
	ErrReservedFieldNonZero = errors.New("reserved field is non-zero")

	// ErrArchiveRecordTruncated is returned by archive.Reader when a
	// record's header is present but its payload is shorter than declared.
	ErrArchiveRecordTruncated = errors.New("archive record truncated")
)
