// Command wirereplay records a stream of batch frames to an archive file
// and plays one back. It exercises the archive package and the compress
// codecs end to end, outside the live wire path.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/codemaker66/trades-hall-omni-twin-sub004/archive"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/batch"
	"github.com/codemaker66/trades-hall-omni-twin-sub004/compress"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "record":
		err = runRecord(os.Args[2:])
	case "play":
		err = runPlay(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "wirereplay:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wirereplay record -out <file> [-codec zstd|s2|lz4|none] < frames")
	fmt.Fprintln(os.Stderr, "       wirereplay play -in <file> > frames")
}

func parseCodec(name string) (compress.Codec, error) {
	var alg compress.Algorithm
	switch name {
	case "zstd":
		alg = compress.AlgorithmZstd
	case "s2":
		alg = compress.AlgorithmS2
	case "lz4":
		alg = compress.AlgorithmLZ4
	case "none", "":
		alg = compress.AlgorithmNone
	default:
		return nil, fmt.Errorf("unknown -codec %q", name)
	}

	return compress.GetCodec(alg)
}

func runRecord(args []string) error {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	outPath := fs.String("out", "", "archive file to write")
	codecName := fs.String("codec", "zstd", "zstd|s2|lz4|none")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *outPath == "" {
		return fmt.Errorf("-out is required")
	}

	codec, err := parseCodec(*codecName)
	if err != nil {
		return err
	}

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}
	defer out.Close()

	w := archive.NewWriter(out, codec)
	in := bufio.NewReader(os.Stdin)

	count := 0
	for {
		frame, err := readFrame(in)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read frame %d from stdin: %w", count, err)
		}

		if err := w.WriteFrame(frame); err != nil {
			return fmt.Errorf("write archive record %d: %w", count, err)
		}

		count++
	}

	fmt.Fprintf(os.Stderr, "wirereplay: recorded %d frames to %s\n", count, *outPath)

	return nil
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	inPath := fs.String("in", "", "archive file to read")
	codecName := fs.String("codec", "zstd", "zstd|s2|lz4|none, must match what the archive was recorded with")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inPath == "" {
		return fmt.Errorf("-in is required")
	}

	codec, err := parseCodec(*codecName)
	if err != nil {
		return err
	}

	in, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("open archive file: %w", err)
	}
	defer in.Close()

	r := archive.NewReader(in, codec)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		frame, _, err := r.ReadFrame()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read archive record: %w", err)
		}

		if _, err := out.Write(frame); err != nil {
			return fmt.Errorf("write frame to stdout: %w", err)
		}
	}
}

// readFrame reads one length-prefixed batch frame from r, peeking the
// 4-byte length prefix before reading the rest so it never blocks past one
// frame boundary.
func readFrame(r *bufio.Reader) ([]byte, error) {
	prefix, err := r.Peek(4)
	if err != nil {
		if err == io.EOF && len(prefix) == 0 {
			return nil, io.EOF
		}

		return nil, err
	}

	n, err := batch.PeekFrameLength(prefix)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, n)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, err
	}

	return frame, nil
}
