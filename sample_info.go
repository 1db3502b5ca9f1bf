package wavegen

import (
	"encoding/binary"
	"fmt"

	"github.com/cwbudde/wavegen/internal/bincmp"
)

// SampleInfo describes the layout of one frame: format, bit depth and
// channel count. The zero value describes nothing and is rejected by Writer;
// use the Int8, Int16, Int24, Int32 and Float32 constructors.
type SampleInfo struct {
	format   SampleFormat
	bitDepth BitDepth
	channels Channels
}

func newSampleInfo(format SampleFormat, depth BitDepth, channels Channels) (SampleInfo, error) {
	if channels < 1 {
		return SampleInfo{}, fmt.Errorf("%w: sample info needs at least one channel", ErrRange)
	}

	return SampleInfo{format: format, bitDepth: depth, channels: channels}, nil
}

// Int8 describes unsigned 8-bit PCM.
func Int8(channels Channels) (SampleInfo, error) {
	return newSampleInfo(FormatPCM, Bit8, channels)
}

// Int16 describes signed 16-bit PCM.
func Int16(channels Channels) (SampleInfo, error) {
	return newSampleInfo(FormatPCM, Bit16, channels)
}

// Int24 describes signed 24-bit PCM.
func Int24(channels Channels) (SampleInfo, error) {
	return newSampleInfo(FormatPCM, Bit24, channels)
}

// Int32 describes signed 32-bit PCM.
func Int32(channels Channels) (SampleInfo, error) {
	return newSampleInfo(FormatPCM, Bit32, channels)
}

// Float32 describes IEEE-754 binary32 samples.
func Float32(channels Channels) (SampleInfo, error) {
	return newSampleInfo(FormatIEEEFloat, Bit32, channels)
}

// NewSampleInfo picks the constructor matching format and depth. Float only
// comes in 32 bits.
func NewSampleInfo(format SampleFormat, depth BitDepth, channels Channels) (SampleInfo, error) {
	switch {
	case format == FormatIEEEFloat && depth == Bit32:
		return Float32(channels)
	case format == FormatPCM && depth.valid():
		return newSampleInfo(format, depth, channels)
	default:
		return SampleInfo{}, fmt.Errorf("%w: %s with %d bits", ErrUnsupported, format, depth)
	}
}

func (i SampleInfo) Format() SampleFormat { return i.format }

func (i SampleInfo) BitDepth() BitDepth { return i.bitDepth }

func (i SampleInfo) Channels() Channels { return i.channels }

// SampleSize is the byte size of one frame, the block align of the file.
func (i SampleInfo) SampleSize() int {
	return int(i.channels) * i.bitDepth.Bytes()
}

// IsZero reports whether i was never initialised by a constructor.
func (i SampleInfo) IsZero() bool {
	return i == SampleInfo{}
}

func (i SampleInfo) bytes() []byte {
	b := make([]byte, 6)
	binary.LittleEndian.PutUint16(b[0:], uint16(i.format))
	binary.LittleEndian.PutUint16(b[2:], uint16(i.bitDepth))
	binary.LittleEndian.PutUint16(b[4:], uint16(i.channels))

	return b
}

// Equal compares the binary representation of both infos.
func (i SampleInfo) Equal(o SampleInfo) bool {
	return bincmp.Equal(i.bytes(), o.bytes())
}

// Hash is consistent with Equal.
func (i SampleInfo) Hash() uint64 {
	return bincmp.Hash(i.bytes())
}

func (i SampleInfo) String() string {
	return fmt.Sprintf("%s %d-bit %s", i.format, i.bitDepth, i.channels)
}
