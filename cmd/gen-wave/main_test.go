package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wavegen"
	"github.com/go-audio/wav"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-frequency", "220"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	fi, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	// 0.01 sec * 48000 Hz * 2 bytes
	if fi.Size() != 44+960 {
		t.Fatalf("wav file size=%d, want %d", fi.Size(), 44+960)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatalf("generated file is not a valid wav")
	}

	if dec.SampleRate != 48000 {
		t.Fatalf("sample rate=%d, want 48000", dec.SampleRate)
	}

	if dec.BitDepth != 16 {
		t.Fatalf("bit depth=%d, want 16", dec.BitDepth)
	}

	if dec.NumChans != 1 {
		t.Fatalf("channels=%d, want 1", dec.NumChans)
	}
}

func TestRunLayouts(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		info   string
		rate   wavegen.SampleRate
		frames int64
	}{
		{"float stereo", []string{"-float", "-bits", "32", "-channels", "2", "-rate", "8000", "-length", "0.5"}, "float 32-bit stereo", 8000, 4000},
		{"pcm24 square", []string{"-bits", "24", "-waveform", "square", "-rate", "44100", "-length", "0.1"}, "pcm 24-bit mono", 44100, 4410},
		{"pcm8 masked", []string{"-bits", "8", "-channels", "3", "-mask", "1,0,true", "-rate", "22050", "-length", "0.2"}, "pcm 8-bit 2.1", 22050, 4410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "out.wav")

			if err := run(append([]string{"-output", outPath}, tt.args...)); err != nil {
				t.Fatal(err)
			}

			f, err := os.Open(outPath)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			h, err := wavegen.ReadHeader(f)
			if err != nil {
				t.Fatal(err)
			}

			if h.Info.String() != tt.info || h.SampleRate != tt.rate || h.Frames() != tt.frames {
				t.Fatalf("got %s at %s with %d frames, want %s at %s with %d frames",
					h.Info, h.SampleRate, h.Frames(), tt.info, tt.rate, tt.frames)
			}
		})
	}
}

func TestRunMaskMutesChannels(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "masked.wav")

	err := run([]string{"-output", outPath, "-channels", "2", "-mask", "0,1", "-length", "0.01"})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r, err := wavegen.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := r.IntBuffer()
	if err != nil {
		t.Fatal(err)
	}

	var loud bool

	for i := 0; i < len(buf.Data); i += 2 {
		if buf.Data[i] != 0 {
			t.Fatalf("frame %d: muted left channel is %d", i/2, buf.Data[i])
		}

		if buf.Data[i+1] != 0 {
			loud = true
		}
	}

	if !loud {
		t.Fatal("right channel is silent")
	}
}

func TestRunRejectsInput(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"amplitude", []string{"-amplitude", "2"}, wavegen.ErrRange},
		{"frequency", []string{"-frequency", "-1"}, wavegen.ErrRange},
		{"waveform", []string{"-waveform", "noise"}, wavegen.ErrFormat},
		{"bits", []string{"-bits", "12"}, wavegen.ErrUnsupported},
		{"float bits", []string{"-float", "-bits", "16"}, wavegen.ErrUnsupported},
		{"channels", []string{"-channels", "0"}, wavegen.ErrRange},
		{"mask syntax", []string{"-mask", "1,maybe"}, errBadMask},
		{"mask length", []string{"-channels", "2", "-mask", "1"}, wavegen.ErrFormatMismatch},
		{"rate", []string{"-rate", "0"}, wavegen.ErrRange},
		{"length", []string{"-length", "-1"}, wavegen.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-output", filepath.Join(dir, tt.name+".wav")}, tt.args...)

			if err := run(args); !errors.Is(err, tt.want) {
				t.Fatalf("run(%v) err=%v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestParseMask(t *testing.T) {
	got, err := parseMask(" 1, false ,T")
	if err != nil {
		t.Fatal(err)
	}

	want := []bool{true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseMask=%v, want %v", got, want)
		}
	}

	if m, err := parseMask(""); m != nil || err != nil {
		t.Fatalf("parseMask(\"\")=%v, %v, want nil, nil", m, err)
	}
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-length", "not-a-number"})
	if err == nil {
		t.Fatalf("expected failure for invalid flag value")
	}
}

func TestRunInvalidOutputPath(t *testing.T) {
	err := run([]string{"-output", "/nonexistent/dir/file.wav", "-length", "0.001"})
	if err == nil {
		t.Fatal("expected error for invalid output path")
	}
}
