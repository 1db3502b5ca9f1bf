package wavegen

import (
	"fmt"

	"github.com/cwbudde/wavegen/internal/bincmp"
	"github.com/cwbudde/wavegen/numeric"
)

// Sample is one packed frame: a little-endian value per channel, in channel
// order, exactly as it appears in the data chunk. Samples are immutable.
type Sample struct {
	info SampleInfo
	data []byte
}

// NewSample quantises one unit amplitude per channel and packs the frame.
// Quantised values are narrowed by truncation toward zero.
func NewSample(info SampleInfo, values []float64) (Sample, error) {
	if info.IsZero() {
		return Sample{}, fmt.Errorf("%w: zero sample info", ErrRange)
	}

	if len(values) != int(info.channels) {
		return Sample{}, fmt.Errorf("%w: %d values for %s", ErrFormatMismatch, len(values), info)
	}

	width := info.bitDepth.Bytes()
	data := make([]byte, info.SampleSize())

	for ch, v := range values {
		q, err := info.Quantize(v)
		if err != nil {
			return Sample{}, fmt.Errorf("channel %d: %w", ch, err)
		}

		if err := info.put(data[ch*width:], q); err != nil {
			return Sample{}, fmt.Errorf("channel %d: %w", ch, err)
		}
	}

	return Sample{info: info, data: data}, nil
}

// SampleFromBytes adopts an already packed frame. data must be exactly
// info.SampleSize() bytes long; it is copied.
func SampleFromBytes(info SampleInfo, data []byte) (Sample, error) {
	if info.IsZero() {
		return Sample{}, fmt.Errorf("%w: zero sample info", ErrRange)
	}

	if len(data) != info.SampleSize() {
		return Sample{}, fmt.Errorf("%w: %d bytes for %s", ErrFormatMismatch, len(data), info)
	}

	return Sample{info: info, data: append([]byte(nil), data...)}, nil
}

func fromNative[T any](newInfo func(Channels) (SampleInfo, error), values []T, pack func(SampleInfo, []byte, T) error) (Sample, error) {
	channels, err := ChannelsOf(len(values))
	if err != nil {
		return Sample{}, err
	}

	info, err := newInfo(channels)
	if err != nil {
		return Sample{}, err
	}

	width := info.bitDepth.Bytes()
	data := make([]byte, info.SampleSize())

	for ch, v := range values {
		if err := pack(info, data[ch*width:], v); err != nil {
			return Sample{}, fmt.Errorf("channel %d: %w", ch, err)
		}
	}

	return Sample{info: info, data: data}, nil
}

// SampleFromUint8 packs raw unsigned 8-bit values, one per channel.
func SampleFromUint8(values ...uint8) (Sample, error) {
	return fromNative(Int8, values, func(i SampleInfo, b []byte, v uint8) error {
		return i.putInt(b, int64(v))
	})
}

// SampleFromInt16 packs raw signed 16-bit values, one per channel.
func SampleFromInt16(values ...int16) (Sample, error) {
	return fromNative(Int16, values, func(i SampleInfo, b []byte, v int16) error {
		return i.putInt(b, int64(v))
	})
}

// SampleFromInt24 packs raw signed 24-bit values, one per channel.
func SampleFromInt24(values ...numeric.Int24) (Sample, error) {
	return fromNative(Int24, values, func(_ SampleInfo, b []byte, v numeric.Int24) error {
		v.PutBytes(b)
		return nil
	})
}

// SampleFromInt32 packs raw signed 32-bit values, one per channel.
func SampleFromInt32(values ...int32) (Sample, error) {
	return fromNative(Int32, values, func(i SampleInfo, b []byte, v int32) error {
		return i.putInt(b, int64(v))
	})
}

// SampleFromFloat32 packs raw binary32 values, one per channel. Values are
// stored as given, without range checking.
func SampleFromFloat32(values ...float32) (Sample, error) {
	return fromNative(Float32, values, func(_ SampleInfo, b []byte, v float32) error {
		putFloat(b, v)
		return nil
	})
}

func (s Sample) Info() SampleInfo { return s.info }

// Data returns a copy of the packed frame.
func (s Sample) Data() []byte {
	return append([]byte(nil), s.data...)
}

// Len is the byte length of the frame.
func (s Sample) Len() int { return len(s.data) }

// IsZero reports whether s was never built.
func (s Sample) IsZero() bool { return s.data == nil }

// Values unpacks the raw per-channel values: 0..255 for 8-bit, the signed
// integer for wider PCM and the stored float for IEEE samples.
func (s Sample) Values() []float64 {
	width := s.info.bitDepth.Bytes()
	if width == 0 {
		return nil
	}

	out := make([]float64, 0, len(s.data)/width)
	for off := 0; off+width <= len(s.data); off += width {
		out = append(out, s.info.value(s.data[off:off+width]))
	}

	return out
}

// Normalized returns the per-channel values mapped back into [-1, 1].
func (s Sample) Normalized() []float64 {
	out := s.Values()
	for i, v := range out {
		out[i] = s.info.Dequantize(v)
	}

	return out
}

// Equal compares info and payload bytes. Two float samples holding NaN are
// equal when their bit patterns are.
func (s Sample) Equal(o Sample) bool {
	return s.info.Equal(o.info) && bincmp.Equal(s.data, o.data)
}

// Hash is consistent with Equal.
func (s Sample) Hash() uint64 {
	return bincmp.Hash(s.info.bytes(), s.data)
}

func (s Sample) String() string {
	return fmt.Sprintf("%s %v", s.info, s.Values())
}
