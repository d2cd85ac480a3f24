// Command wirecat encodes a single operation from flags to stdout, or
// decodes a single operation from stdin to a human-readable line on
// stdout. It exists for manual wire inspection and fixture generation, not
// as part of the wire contract itself.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/codec"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/hlc"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/wire"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "wirecat:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wirecat encode -tag <move|rotate|scale|place|remove> [flags]")
	fmt.Fprintln(os.Stderr, "       wirecat decode < op.bin")
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	tag := fs.String("tag", "", "move|rotate|scale|place|remove")
	objectID := fs.Uint("object", 0, "object identifier")
	wallMs := fs.Uint64("wallms", 0, "HLC wall-clock milliseconds")
	counter := fs.Uint("counter", 0, "HLC counter")
	x := fs.Float64("x", 0, "first component (dx/rx/sx/x)")
	y := fs.Float64("y", 0, "second component (dy/ry/sy/y)")
	z := fs.Float64("z", 0, "third component (dz/rz/sz/z)")
	rx := fs.Float64("rx", 0, "place rotation x")
	ry := fs.Float64("ry", 0, "place rotation y")
	rz := fs.Float64("rz", 0, "place rotation z")
	furniture := fs.Uint("furniture", 0, "place furniture index")
	if err := fs.Parse(args); err != nil {
		return err
	}

	op := codec.Operation{
		HLC:      hlc.Timestamp{WallMs: *wallMs, Counter: uint16(*counter)}, //nolint:gosec
		ObjectID: uint32(*objectID),                                        //nolint:gosec
	}

	switch *tag {
	case "move":
		op.Tag = wire.TagMove
	case "rotate":
		op.Tag = wire.TagRotate
	case "scale":
		op.Tag = wire.TagScale
	case "place":
		op.Tag = wire.TagPlace
		op.FurnitureType = uint8(*furniture) //nolint:gosec
		op.Pos = [3]float32{float32(*x), float32(*y), float32(*z)}
		op.Rot = [3]float32{float32(*rx), float32(*ry), float32(*rz)}
	case "remove":
		op.Tag = wire.TagRemove
	default:
		return fmt.Errorf("unknown -tag %q", *tag)
	}

	if op.Tag == wire.TagMove || op.Tag == wire.TagRotate || op.Tag == wire.TagScale {
		op.Vec = [3]float32{float32(*x), float32(*y), float32(*z)}
	}

	_, err := os.Stdout.Write(codec.Encode(op))

	return err
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	asHex := fs.Bool("hex", false, "read input as hex text instead of raw bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	data := raw
	if *asHex {
		data, err = hex.DecodeString(string(raw))
		if err != nil {
			return fmt.Errorf("decode hex input: %w", err)
		}
	}

	op, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode operation: %w", err)
	}

	fmt.Printf("tag=%s object=%d hlc=(%d,%d)", op.Tag, op.ObjectID, op.HLC.WallMs, op.HLC.Counter)
	switch op.Tag {
	case wire.TagMove, wire.TagRotate, wire.TagScale:
		fmt.Printf(" vec=%v\n", op.Vec)
	case wire.TagPlace:
		fmt.Printf(" furniture=%d pos=%v rot=%v\n", op.FurnitureType, op.Pos, op.Rot)
	case wire.TagBatchMove, wire.TagBatchRotate:
		fmt.Printf(" items=%d\n", len(op.Items))
	default:
		fmt.Println()
	}

	return nil
}
