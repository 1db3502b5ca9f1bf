// This tool renders a periodic waveform into a wav file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/wavegen"
	"github.com/cwbudde/wavegen/waveform"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

var errBadMask = errors.New("invalid channel mask")

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-wave", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	shape := flagSet.String("waveform", "sine", "waveform to generate: sine, square, triangle or sawtooth")
	amplitude := flagSet.Float64("amplitude", 1, "peak amplitude in [0, 1]")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	phase := flagSet.Float64("phase", 0, "phase offset in radians")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	rate := flagSet.Uint("rate", uint(wavegen.Hz48000), "sample rate in hertz")
	bits := flagSet.Uint("bits", 16, "bits per sample: 8, 16, 24 or 32")
	float := flagSet.Bool("float", false, "write 32-bit IEEE float samples instead of PCM")
	channels := flagSet.Int("channels", 1, "number of channels")
	mask := flagSet.String("mask", "", "comma separated channel switches, e.g. 1,0; empty enables all channels")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	w, err := waveform.ParseWaveform(*shape)
	if err != nil {
		return err
	}

	params, err := waveform.NewParameters(w, *amplitude, *frequency, *phase)
	if err != nil {
		return err
	}

	info, err := sampleInfo(*float, *bits, *channels)
	if err != nil {
		return err
	}

	channelMask, err := parseMask(*mask)
	if err != nil {
		return err
	}

	if *rate == 0 || *rate > 1<<32-1 {
		return fmt.Errorf("%w: sample rate %d", wavegen.ErrRange, *rate)
	}

	log.Printf("generating a %g sec %s wav at %g hz, %s @ %d Hz", *length, w, *frequency, info, *rate)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	wavOut, err := wavegen.NewWriter(file, info, wavegen.SampleRate(*rate))
	if err != nil {
		file.Close()
		return err
	}

	err = wavegen.GenerateWave(wavOut, params, channelMask, *length)

	return errors.Join(err, wavOut.Close())
}

func sampleInfo(float bool, bits uint, channels int) (wavegen.SampleInfo, error) {
	ch, err := wavegen.ChannelsOf(channels)
	if err != nil {
		return wavegen.SampleInfo{}, err
	}

	format := wavegen.FormatPCM
	if float {
		format = wavegen.FormatIEEEFloat
	}

	if bits > 32 {
		return wavegen.SampleInfo{}, fmt.Errorf("%w: %d bits", wavegen.ErrUnsupported, bits)
	}

	return wavegen.NewSampleInfo(format, wavegen.BitDepth(bits), ch)
}

// parseMask reads "1,0,true" style lists. An empty string means no mask.
func parseMask(s string) ([]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	mask := make([]bool, len(parts))

	for i, p := range parts {
		on, err := strconv.ParseBool(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d is %q", errBadMask, i, p)
		}

		mask[i] = on
	}

	return mask, nil
}
