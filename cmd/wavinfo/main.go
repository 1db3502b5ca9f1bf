// This tool prints the layout of a wav file and optionally its first frames.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavegen"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	frames := flagSet.Int("frames", 0, "number of leading frames to print")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	file, err := os.Open(flagSet.Arg(0))
	if err != nil {
		return err
	}
	defer file.Close()

	r, err := wavegen.NewReader(file)
	if err != nil {
		return err
	}

	h := r.Header()

	fmt.Fprintf(out, "Format: %s\n", h.Info.Format())
	fmt.Fprintf(out, "Channels: %d (%s)\n", h.Info.Channels(), h.Info.Channels())
	fmt.Fprintf(out, "SampleRate: %d\n", h.SampleRate)
	fmt.Fprintf(out, "BitsPerSample: %d\n", h.Info.BitDepth())
	fmt.Fprintf(out, "BlockAlign: %d\n", h.Fmt.BlockAlign)
	fmt.Fprintf(out, "ByteRate: %d\n", h.Fmt.AvgBytesPerSec)
	fmt.Fprintf(out, "RiffSize: %d\n", h.RiffSize)
	fmt.Fprintf(out, "DataLength: %d\n", h.DataLength)
	fmt.Fprintf(out, "Frames: %d\n", h.Frames())
	fmt.Fprintf(out, "Duration: %s\n", h.Duration())

	for i := 0; i < *frames; i++ {
		s, err := r.ReadSample()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		fmt.Fprintf(out, "\tframe [%d]:\t%v\t%.6f\n", i, s.Values(), s.Normalized())
	}

	return nil
}
