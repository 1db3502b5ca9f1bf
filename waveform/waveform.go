// Package waveform provides the canonical periodic waveforms and a factory
// for parameterised waveform functions.
//
// The unit functions take a phase argument in radians and assume amplitude 1,
// frequency 1/2π and phase 0. New scales a unit function by Parameters.
package waveform

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/wavegen/numeric"
)

var (
	// ErrRange is returned for parameters outside their documented domain.
	ErrRange = numeric.ErrRange
	// ErrFormat is returned for names that do not parse.
	ErrFormat = numeric.ErrFormat
)

// Waveform identifies one of the canonical periodic shapes.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
)

var waveformNames = [...]string{
	Sine:     "sine",
	Square:   "square",
	Triangle: "triangle",
	Sawtooth: "sawtooth",
}

func (w Waveform) Valid() bool {
	return w >= Sine && w <= Sawtooth
}

func (w Waveform) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}

	return waveformNames[w]
}

// ParseWaveform looks up a waveform by its case-insensitive name.
func ParseWaveform(s string) (Waveform, error) {
	for i, name := range waveformNames {
		if strings.EqualFold(s, name) {
			return Waveform(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown waveform %q", ErrFormat, s)
}

// Func maps a time in seconds to an amplitude.
type Func func(time float64) float64

const twoPi = 2 * math.Pi

// sign mirrors the three-way sign used by the shape formulas: 0 maps to 0.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// UnitSine is sin(t).
func UnitSine(t float64) float64 {
	return math.Sin(t)
}

// UnitSquare is +1 on (0, π), -1 on (π, 2π) and 0 exactly at t = 0 and at odd
// multiples of π. math.Mod truncates, so negative t mirrors positive t.
func UnitSquare(t float64) float64 {
	return sign(sign(t) * (math.Pi - math.Abs(math.Mod(t, twoPi))))
}

// UnitTriangle reflects t about π/2 with period 2π: 0 at t = 0, 1 at π/2,
// -1 at 3π/2.
func UnitTriangle(t float64) float64 {
	shifted := math.Abs(math.Mod(t-math.Pi/2, twoPi)) - math.Pi

	return sign(shifted)*shifted/math.Pi*2 - 1
}

// UnitSawtooth ramps linearly from -1 at t = -π to 1 just before π, with the
// modulo normalised to be non-negative for negative t.
func UnitSawtooth(t float64) float64 {
	return (math.Mod(math.Mod(t+math.Pi, twoPi)+twoPi, twoPi) - math.Pi) / math.Pi
}

// Unit returns the unit function for w. It panics on a value outside the
// declared constants.
func Unit(w Waveform) func(float64) float64 {
	switch w {
	case Sine:
		return UnitSine
	case Square:
		return UnitSquare
	case Triangle:
		return UnitTriangle
	case Sawtooth:
		return UnitSawtooth
	default:
		panic(fmt.Sprintf("waveform: invalid waveform %d", int(w)))
	}
}

// New returns amplitude * unit(time*2π*frequency + phase).
func New(p Parameters) Func {
	unit := Unit(p.waveform)
	amplitude, frequency, phase := p.amplitude, p.frequency, p.phase

	return func(time float64) float64 {
		return amplitude * unit(time*twoPi*frequency+phase)
	}
}
