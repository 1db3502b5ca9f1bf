package wavegen

import "fmt"

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3

	// fmtChunkSize is the size of the plain PCM fmt chunk body, without the
	// cbSize extension.
	fmtChunkSize = 16
)

// SampleFormat is the WAVE format tag of a sample payload.
type SampleFormat uint16

const (
	// FormatPCM is linear integer PCM.
	FormatPCM SampleFormat = wavFormatPCM
	// FormatIEEEFloat is IEEE-754 binary32.
	FormatIEEEFloat SampleFormat = wavFormatIEEEFloat
)

func (f SampleFormat) String() string {
	switch f {
	case FormatPCM:
		return "pcm"
	case FormatIEEEFloat:
		return "float"
	default:
		return fmt.Sprintf("format(%d)", uint16(f))
	}
}

// BitDepth is the width of a single channel value in bits.
type BitDepth uint16

const (
	Bit8  BitDepth = 8
	Bit16 BitDepth = 16
	Bit24 BitDepth = 24
	Bit32 BitDepth = 32
)

// Bytes returns the width of one channel value in bytes.
func (b BitDepth) Bytes() int {
	return int(b) / 8
}

func (b BitDepth) valid() bool {
	switch b {
	case Bit8, Bit16, Bit24, Bit32:
		return true
	default:
		return false
	}
}

// FmtChunk is the 16 byte body of the fmt chunk, field for field.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

func newFmtChunk(info SampleInfo, rate SampleRate) FmtChunk {
	blockAlign := uint16(info.SampleSize())

	return FmtChunk{
		FormatTag:      uint16(info.format),
		NumChannels:    uint16(info.channels),
		SampleRate:     uint32(rate),
		AvgBytesPerSec: uint32(rate) * uint32(blockAlign),
		BlockAlign:     blockAlign,
		BitsPerSample:  uint16(info.bitDepth),
	}
}

// SampleInfo validates the chunk against the layouts this package produces
// and returns the matching SampleInfo.
func (f FmtChunk) SampleInfo() (SampleInfo, error) {
	var (
		info SampleInfo
		err  error
	)

	switch {
	case f.FormatTag == wavFormatIEEEFloat && f.BitsPerSample == 32:
		info, err = Float32(Channels(f.NumChannels))
	case f.FormatTag == wavFormatPCM && BitDepth(f.BitsPerSample).valid():
		info, err = newSampleInfo(FormatPCM, BitDepth(f.BitsPerSample), Channels(f.NumChannels))
	default:
		return SampleInfo{}, fmt.Errorf("%w: format tag %d with %d bits per sample",
			ErrUnsupported, f.FormatTag, f.BitsPerSample)
	}

	if err != nil {
		return SampleInfo{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	if int(f.BlockAlign) != info.SampleSize() {
		return SampleInfo{}, fmt.Errorf("%w: block align %d, want %d", ErrUnsupported, f.BlockAlign, info.SampleSize())
	}

	if f.SampleRate == 0 {
		return SampleInfo{}, fmt.Errorf("%w: zero sample rate", ErrUnsupported)
	}

	return info, nil
}
