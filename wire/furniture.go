package wire

import (
	"fmt"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/errs"
)

// furnitureNames is the closed, ordered set of furniture kinds. Index into
// the wire's Place payload is the slice index; this mapping is part of the
// wire contract and must not be reordered.
var furnitureNames = [...]string{
	"chair",
	"round-table",
	"rect-table",
	"trestle-table",
	"podium",
	"stage",
	"bar",
}

// FurnitureIndexToName maps a furniture index to its name. It is total over
// the defined range 0..6 and fails with ErrUnknownFurnitureKind outside it.
//
// Note this is distinct from the codec's Place payload decoding: the codec
// stores the raw index byte as-is without calling this function, so an
// out-of-range index still decodes successfully (see "furniture enum
// growth" in the design notes) — it only becomes an error if the caller
// chooses to resolve the index to a name.
func FurnitureIndexToName(i uint8) (string, error) {
	if int(i) >= len(furnitureNames) {
		return "", fmt.Errorf("%w: index %d", errs.ErrUnknownFurnitureKind, i)
	}

	return furnitureNames[i], nil
}

// FurnitureNameToIndex maps a furniture name to its index. Fails with
// ErrUnknownFurnitureKind for any name outside the closed set.
func FurnitureNameToIndex(name string) (uint8, error) {
	for i, n := range furnitureNames {
		if n == name {
			return uint8(i), nil //nolint:gosec
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownFurnitureKind, name)
}

// FurnitureKindCount is the size of the closed furniture set.
const FurnitureKindCount = len(furnitureNames)
