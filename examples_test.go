package wavegen

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavegen/waveform"
)

func ExampleGenerateWave() {
	dir, err := os.MkdirTemp("", "wavegen")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	file, err := os.Create(filepath.Join(dir, "a440.wav"))
	if err != nil {
		log.Fatal(err)
	}

	info, err := Int16(Stereo)
	if err != nil {
		log.Fatal(err)
	}

	w, err := NewWriter(file, info, Hz44100)
	if err != nil {
		file.Close()
		log.Fatal(err)
	}
	// Close finalizes the header and closes the file.
	defer w.Close()

	params, err := waveform.NewParameters(waveform.Sine, 1, 440, 0)
	if err != nil {
		log.Fatal(err)
	}

	if err := GenerateWave(w, params, nil, 1.0); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d frames, %d data bytes, %s\n", w.Frames(), w.DataLength(), w.Duration())
	// Output: 44100 frames, 176400 data bytes, 1s
}

func ExampleNewSample() {
	info, err := Int24(Stereo)
	if err != nil {
		log.Fatal(err)
	}

	s, err := NewSample(info, []float64{1, -0.5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% x\n", s.Data())
	fmt.Printf("%.0f\n", s.Values())
	// Output:
	// ff ff 7f 01 00 c0
	// [8388607 -4194303]
}

func ExampleReadHeader() {
	dir, err := os.MkdirTemp("", "wavegen")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "saw.wav")

	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}

	info, _ := Int8(Mono)

	w, err := NewWriter(file, info, Hz8000)
	if err != nil {
		log.Fatal(err)
	}

	saw, err := waveform.Standard(waveform.Sawtooth)
	if err != nil {
		log.Fatal(err)
	}

	if err := GenerateWave(w, saw, nil, 0.5); err != nil {
		log.Fatal(err)
	}

	if err := w.Close(); err != nil {
		log.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	h, err := ReadHeader(in)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s at %s: %d frames, %s\n", h.Info, h.SampleRate, h.Frames(), h.Duration())
	// Output: pcm 8-bit mono at 8000 Hz: 4000 frames, 500ms
}
