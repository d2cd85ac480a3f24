package codec

import (
	"fmt"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/errs"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/wire"
)

// ValidateHeader is an opt-in strict check for untrusted input. Decode and
// DecodeAt always accept a non-zero reserved object id on a batch header
// (the wire contract requires decoders to tolerate it), but a peer that
// wants to flag a misbehaving sender can run ValidateHeader after decoding
// and treat ErrReservedFieldNonZero as a soft warning rather than a decode
// failure.
func ValidateHeader(op Operation) error {
	if (op.Tag == wire.TagBatchMove || op.Tag == wire.TagBatchRotate) && op.ObjectID != 0 {
		return fmt.Errorf("%w: %s header carries object id %d", errs.ErrReservedFieldNonZero, op.Tag, op.ObjectID)
	}

	return nil
}
