package wavegen

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/wavegen/numeric"
)

const (
	pcm8Center = 128
	maxPCM8    = math.MaxInt8
	maxPCM16   = math.MaxInt16
	maxPCM24   = numeric.MaxInt24
	maxPCM32   = math.MaxInt32
)

// Quantize maps a unit amplitude in [-1, 1] onto the numeric range of the
// format without narrowing it. Unsigned 8-bit is offset by 128; signed
// integers scale symmetrically by their maximum; float samples are rounded
// to binary32 precision.
func (i SampleInfo) Quantize(v float64) (float64, error) {
	if math.IsNaN(v) || v < -1 || v > 1 {
		return 0, fmt.Errorf("%w: amplitude %g outside [-1, 1]", ErrRange, v)
	}

	if i.format == FormatIEEEFloat {
		return float64(float32(v)), nil
	}

	switch i.bitDepth {
	case Bit8:
		return v*maxPCM8 + pcm8Center, nil
	case Bit16:
		return v * maxPCM16, nil
	case Bit24:
		return v * maxPCM24, nil
	case Bit32:
		return v * maxPCM32, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, i)
	}
}

// Dequantize is the inverse of Quantize for a raw channel value.
func (i SampleInfo) Dequantize(raw float64) float64 {
	if i.format == FormatIEEEFloat {
		return raw
	}

	switch i.bitDepth {
	case Bit8:
		return (raw - pcm8Center) / maxPCM8
	case Bit16:
		return raw / maxPCM16
	case Bit24:
		return raw / maxPCM24
	case Bit32:
		return raw / maxPCM32
	default:
		return 0
	}
}

// rawBounds is the inclusive range of a raw PCM channel value.
func (i SampleInfo) rawBounds() (lo, hi int64) {
	switch i.bitDepth {
	case Bit8:
		return 0, math.MaxUint8
	case Bit16:
		return math.MinInt16, math.MaxInt16
	case Bit24:
		return numeric.MinInt24, numeric.MaxInt24
	default:
		return math.MinInt32, math.MaxInt32
	}
}

// putInt packs a raw PCM value little-endian into b.
func (i SampleInfo) putInt(b []byte, v int64) error {
	if lo, hi := i.rawBounds(); v < lo || v > hi {
		return fmt.Errorf("%w: %d does not fit %d-bit pcm", ErrRange, v, i.bitDepth)
	}

	switch i.bitDepth {
	case Bit8:
		b[0] = uint8(v)
	case Bit16:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case Bit24:
		x, err := numeric.NewInt24(int32(v))
		if err != nil {
			return err
		}

		x.PutBytes(b)
	case Bit32:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, i)
	}

	return nil
}

func putFloat(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

// put narrows a quantised value toward zero and packs it.
func (i SampleInfo) put(b []byte, q float64) error {
	if i.format == FormatIEEEFloat {
		putFloat(b, float32(q))
		return nil
	}

	return i.putInt(b, int64(q))
}

// value reads back one packed channel value.
func (i SampleInfo) value(b []byte) float64 {
	if i.format == FormatIEEEFloat {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}

	switch i.bitDepth {
	case Bit8:
		return float64(b[0])
	case Bit16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case Bit24:
		return float64(numeric.Int24FromBytes(b).Int32())
	default:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	}
}
