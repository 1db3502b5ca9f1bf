package numeric

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/wavegen/internal/bincmp"
)

// Half is an IEEE-754 binary16 value: 1 sign bit, 5 exponent bits and 10
// mantissa bits. The underlying uint16 is the bit pattern, so == compares
// binary representations.
type Half uint16

const (
	// HalfEpsilon is the smallest positive subnormal value.
	HalfEpsilon Half = 0x0001
	// HalfMax is the largest finite value (65504).
	HalfMax Half = 0x7BFF
	// HalfMin is the most negative finite value (-65504).
	HalfMin    Half = 0xFBFF
	HalfInf    Half = 0x7C00
	HalfNegInf Half = 0xFC00
	HalfNaN    Half = 0xFE00
)

const (
	halfSignMask     = 0x8000
	halfExpMask      = 0x7C00
	halfMantMask     = 0x03FF
	halfQuietBit     = 0x0200
	halfImplicitBit  = 0x0400
	halfExpBias      = 15
	halfMinNormalExp = -14
	halfMaxExp       = 15

	f32ExpBias   = 127
	f32MantBits  = 23
	f32MantMask  = 0x007FFFFF
	f32ExpAll    = 0xFF
	f32Implicit  = 0x00800000
	mantDropBits = f32MantBits - 10
)

// NewHalf converts f to the nearest half value, ties to even. Magnitudes
// beyond HalfMax saturate to infinity, magnitudes below half of HalfEpsilon
// flush to a signed zero, and NaN stays NaN.
func NewHalf(f float32) Half {
	bits := math.Float32bits(f)
	sign := uint32(bits>>16) & halfSignMask
	exp := int32(bits>>f32MantBits) & f32ExpAll
	mant := bits & f32MantMask

	if exp == f32ExpAll {
		if mant == 0 {
			return Half(sign | halfExpMask)
		}

		payload := mant >> mantDropBits
		if payload == 0 {
			payload = halfQuietBit
		}

		return Half(sign | halfExpMask | payload)
	}

	e := exp - f32ExpBias

	switch {
	case e > halfMaxExp:
		return Half(sign | halfExpMask)
	case e >= halfMinNormalExp:
		// A carry out of the mantissa bumps the exponent, up to infinity.
		h := uint32(e+halfExpBias)<<10 | mant>>mantDropBits

		return Half(sign | roundEven(h, mant&(1<<mantDropBits-1), 1<<(mantDropBits-1)))
	case e < halfMinNormalExp-11:
		return Half(sign)
	}

	// Subnormal: value = frac * 2^-24, so frac = m >> (-e - 1).
	m := mant | f32Implicit
	shift := uint32(-e - 1)
	frac := m >> shift

	return Half(sign | roundEven(frac, m&(1<<shift-1), 1<<(shift-1)))
}

func roundEven(v, rest, halfway uint32) uint32 {
	if rest > halfway || (rest == halfway && v&1 == 1) {
		return v + 1
	}

	return v
}

// HalfFromBits returns the half with the given bit pattern.
func HalfFromBits(b uint16) Half {
	return Half(b)
}

func (h Half) Bits() uint16 {
	return uint16(h)
}

// Float32 widens h exactly.
func (h Half) Float32() float32 {
	sign := uint32(h&halfSignMask) << 16
	exp := uint32(h&halfExpMask) >> 10
	mant := uint32(h & halfMantMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}

		// Subnormal: shift until the implicit bit shows up.
		e := uint32(f32ExpBias - halfExpBias + 1)
		for mant&halfImplicitBit == 0 {
			mant <<= 1
			e--
		}

		mant &= halfMantMask

		return math.Float32frombits(sign | e<<f32MantBits | mant<<mantDropBits)
	case halfExpMask >> 10:
		return math.Float32frombits(sign | f32ExpAll<<f32MantBits | mant<<mantDropBits)
	default:
		return math.Float32frombits(sign | (exp+f32ExpBias-halfExpBias)<<f32MantBits | mant<<mantDropBits)
	}
}

func (h Half) Float64() float64 {
	return float64(h.Float32())
}

func (h Half) IsNaN() bool {
	return h&halfExpMask == halfExpMask && h&halfMantMask != 0
}

// IsInf reports whether h is an infinity. sign > 0 checks for +Inf, sign < 0
// for -Inf and 0 for either.
func (h Half) IsInf(sign int) bool {
	switch {
	case sign > 0:
		return h == HalfInf
	case sign < 0:
		return h == HalfNegInf
	default:
		return h == HalfInf || h == HalfNegInf
	}
}

func (h Half) Add(o Half) Half { return NewHalf(h.Float32() + o.Float32()) }
func (h Half) Sub(o Half) Half { return NewHalf(h.Float32() - o.Float32()) }
func (h Half) Mul(o Half) Half { return NewHalf(h.Float32() * o.Float32()) }
func (h Half) Div(o Half) Half { return NewHalf(h.Float32() / o.Float32()) }
func (h Half) Neg() Half       { return h ^ halfSignMask }

// Compare orders by numeric value; NaN sorts before everything else and
// -0 equals +0.
func (h Half) Compare(o Half) int {
	return cmp.Compare(h.Float32(), o.Float32())
}

func (h Half) Less(o Half) bool {
	return h.Compare(o) < 0
}

// Equal reports binary equality, so NaN equals an identical NaN and -0 does
// not equal +0.
func (h Half) Equal(o Half) bool {
	var a, b [2]byte
	binary.LittleEndian.PutUint16(a[:], uint16(h))
	binary.LittleEndian.PutUint16(b[:], uint16(o))

	return bincmp.Equal(a[:], b[:])
}

func (h Half) Hash() uint64 {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(h))

	return bincmp.Hash(b[:])
}

func (h Half) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}

// ParseHalf parses s with the float32 parser. Finite values beyond HalfMax
// fail with ErrRange; "Inf" and "NaN" are accepted.
func ParseHalf(s string) (Half, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, parseError(s, err)
	}

	if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > float64(HalfMax.Float32()) {
		return 0, fmt.Errorf("%w: %s exceeds the half-precision range", ErrRange, s)
	}

	return NewHalf(float32(f)), nil
}
