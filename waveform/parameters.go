package waveform

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/wavegen/internal/bincmp"
)

// Parameters describes a parameterised waveform. The zero value is not
// valid; build instances with NewParameters or Standard.
type Parameters struct {
	ok        bool
	waveform  Waveform
	amplitude float64
	frequency float64
	phase     float64
}

// StandardFrequency is the frequency at which one period spans 2π seconds.
const StandardFrequency = 1 / (2 * math.Pi)

// NewParameters validates and builds a parameter set. amplitude must be in
// [0, 1] and frequency (Hz) must be >= 0. phase is in radians and is not
// restricted.
func NewParameters(w Waveform, amplitude, frequency, phase float64) (Parameters, error) {
	if !w.Valid() {
		return Parameters{}, fmt.Errorf("%w: waveform %d", ErrRange, int(w))
	}

	if math.IsNaN(amplitude) || amplitude < 0 || amplitude > 1 {
		return Parameters{}, fmt.Errorf("%w: amplitude %g not in [0, 1]", ErrRange, amplitude)
	}

	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency < 0 {
		return Parameters{}, fmt.Errorf("%w: frequency %g must be a non-negative number", ErrRange, frequency)
	}

	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return Parameters{}, fmt.Errorf("%w: phase %g must be finite", ErrRange, phase)
	}

	return Parameters{ok: true, waveform: w, amplitude: amplitude, frequency: frequency, phase: phase}, nil
}

// Standard returns the unit parameters for w: amplitude 1, frequency 1/2π,
// phase 0.
func Standard(w Waveform) (Parameters, error) {
	return NewParameters(w, 1, StandardFrequency, 0)
}

func (p Parameters) Waveform() Waveform { return p.waveform }
func (p Parameters) Amplitude() float64 { return p.amplitude }
func (p Parameters) Frequency() float64 { return p.frequency }
func (p Parameters) Phase() float64     { return p.phase }

// IsZero reports whether p is the unusable zero value.
func (p Parameters) IsZero() bool {
	return !p.ok
}

func (p Parameters) bytes() []byte {
	b := make([]byte, 32)
	binary.LittleEndian.PutUint64(b[0:], uint64(p.waveform))
	binary.LittleEndian.PutUint64(b[8:], math.Float64bits(p.amplitude))
	binary.LittleEndian.PutUint64(b[16:], math.Float64bits(p.frequency))
	binary.LittleEndian.PutUint64(b[24:], math.Float64bits(p.phase))

	return b
}

// Equal compares the binary representation of every field, so a phase of
// -0 differs from +0.
func (p Parameters) Equal(o Parameters) bool {
	return bincmp.Equal(p.bytes(), o.bytes())
}

func (p Parameters) Hash() uint64 {
	return bincmp.Hash(p.bytes())
}

func (p Parameters) String() string {
	return fmt.Sprintf("%s amplitude=%g frequency=%gHz phase=%grad", p.waveform, p.amplitude, p.frequency, p.phase)
}
