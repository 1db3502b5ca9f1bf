package numeric

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/cwbudde/wavegen/internal/bincmp"
)

// MaxUint24 is the largest value a Uint24 can hold.
const MaxUint24 = 1<<24 - 1

// Uint24 is a 24-bit unsigned integer stored as a low 16-bit word and a
// high byte.
type Uint24 struct {
	lo uint16
	hi uint8
}

// NewUint24 narrows v to 24 bits. It fails with ErrRange when v > MaxUint24.
func NewUint24(v uint32) (Uint24, error) {
	return narrowUint24(int64(v))
}

func narrowUint24(v int64) (Uint24, error) {
	if v < 0 || v > MaxUint24 {
		return Uint24{}, fmt.Errorf("%w: %d does not fit in an unsigned 24-bit integer", ErrRange, v)
	}

	return Uint24{lo: uint16(v), hi: uint8(v >> 16)}, nil
}

// Uint24FromBytes decodes three little-endian bytes.
func Uint24FromBytes(b []byte) Uint24 {
	_ = b[2]

	return Uint24{lo: uint16(b[0]) | uint16(b[1])<<8, hi: b[2]}
}

func (v Uint24) Uint32() uint32 {
	return uint32(v.lo) | uint32(v.hi)<<16
}

func (v Uint24) Bytes() [3]byte {
	return [3]byte{byte(v.lo), byte(v.lo >> 8), v.hi}
}

func (v Uint24) PutBytes(b []byte) {
	_ = b[2]
	b[0] = byte(v.lo)
	b[1] = byte(v.lo >> 8)
	b[2] = v.hi
}

func (v Uint24) Add(o Uint24) (Uint24, error) {
	return narrowUint24(int64(v.Uint32()) + int64(o.Uint32()))
}

// Sub fails with ErrRange when the result would be negative.
func (v Uint24) Sub(o Uint24) (Uint24, error) {
	return narrowUint24(int64(v.Uint32()) - int64(o.Uint32()))
}

func (v Uint24) Mul(o Uint24) (Uint24, error) {
	return narrowUint24(int64(v.Uint32()) * int64(o.Uint32()))
}

func (v Uint24) Div(o Uint24) (Uint24, error) {
	if o.Uint32() == 0 {
		return Uint24{}, ErrDivideByZero
	}

	return narrowUint24(int64(v.Uint32() / o.Uint32()))
}

func (v Uint24) Rem(o Uint24) (Uint24, error) {
	if o.Uint32() == 0 {
		return Uint24{}, ErrDivideByZero
	}

	return narrowUint24(int64(v.Uint32() % o.Uint32()))
}

func (v Uint24) Compare(o Uint24) int {
	return cmp.Compare(v.Uint32(), o.Uint32())
}

func (v Uint24) Less(o Uint24) bool {
	return v.Compare(o) < 0
}

// Equal reports binary equality of the packed bytes.
func (v Uint24) Equal(o Uint24) bool {
	a, b := v.Bytes(), o.Bytes()

	return bincmp.Equal(a[:], b[:])
}

func (v Uint24) Hash() uint64 {
	b := v.Bytes()

	return bincmp.Hash(b[:])
}

func (v Uint24) String() string {
	return strconv.FormatUint(uint64(v.Uint32()), 10)
}

// ParseUint24 parses a base-10 unsigned integer with the native 32-bit
// parser and narrows it.
func ParseUint24(s string) (Uint24, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Uint24{}, parseError(s, err)
	}

	return narrowUint24(int64(n))
}
