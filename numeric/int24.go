package numeric

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/cwbudde/wavegen/internal/bincmp"
)

const (
	// MaxInt24 is the largest value an Int24 can hold.
	MaxInt24 = 1<<23 - 1
	// MinInt24 is the smallest value an Int24 can hold.
	MinInt24 = -1 << 23
)

// Int24 is a 24-bit signed integer stored as a low 16-bit word and a
// signed high byte. The zero value is 0.
type Int24 struct {
	lo uint16
	hi int8
}

// NewInt24 narrows v to 24 bits. It fails with ErrRange when v is outside
// [MinInt24, MaxInt24].
func NewInt24(v int32) (Int24, error) {
	return narrowInt24(int64(v))
}

func narrowInt24(v int64) (Int24, error) {
	if v < MinInt24 || v > MaxInt24 {
		return Int24{}, fmt.Errorf("%w: %d does not fit in a signed 24-bit integer", ErrRange, v)
	}

	return Int24{lo: uint16(v), hi: int8(v >> 16)}, nil
}

// Int24FromBytes decodes three little-endian bytes. It panics if b is
// shorter than 3 bytes, like encoding/binary does.
func Int24FromBytes(b []byte) Int24 {
	_ = b[2]

	return Int24{lo: uint16(b[0]) | uint16(b[1])<<8, hi: int8(b[2])}
}

// Int32 returns the sign-extended native value.
func (v Int24) Int32() int32 {
	return int32(v.lo) | int32(v.hi)<<16
}

// Bytes returns the little-endian packed representation.
func (v Int24) Bytes() [3]byte {
	return [3]byte{byte(v.lo), byte(v.lo >> 8), byte(v.hi)}
}

// PutBytes writes the little-endian representation into b[:3].
func (v Int24) PutBytes(b []byte) {
	_ = b[2]
	b[0] = byte(v.lo)
	b[1] = byte(v.lo >> 8)
	b[2] = byte(v.hi)
}

func (v Int24) Add(o Int24) (Int24, error) {
	return narrowInt24(int64(v.Int32()) + int64(o.Int32()))
}

func (v Int24) Sub(o Int24) (Int24, error) {
	return narrowInt24(int64(v.Int32()) - int64(o.Int32()))
}

func (v Int24) Mul(o Int24) (Int24, error) {
	return narrowInt24(int64(v.Int32()) * int64(o.Int32()))
}

// Div truncates toward zero.
func (v Int24) Div(o Int24) (Int24, error) {
	if o.Int32() == 0 {
		return Int24{}, ErrDivideByZero
	}

	return narrowInt24(int64(v.Int32()) / int64(o.Int32()))
}

// Rem has the sign of the dividend.
func (v Int24) Rem(o Int24) (Int24, error) {
	if o.Int32() == 0 {
		return Int24{}, ErrDivideByZero
	}

	return narrowInt24(int64(v.Int32()) % int64(o.Int32()))
}

// Neg fails only for MinInt24.
func (v Int24) Neg() (Int24, error) {
	return narrowInt24(-int64(v.Int32()))
}

// Compare returns -1, 0 or +1 by numeric order.
func (v Int24) Compare(o Int24) int {
	return cmp.Compare(v.Int32(), o.Int32())
}

func (v Int24) Less(o Int24) bool {
	return v.Compare(o) < 0
}

// Equal reports binary equality of the packed bytes.
func (v Int24) Equal(o Int24) bool {
	a, b := v.Bytes(), o.Bytes()

	return bincmp.Equal(a[:], b[:])
}

func (v Int24) Hash() uint64 {
	b := v.Bytes()

	return bincmp.Hash(b[:])
}

func (v Int24) String() string {
	return strconv.FormatInt(int64(v.Int32()), 10)
}

// ParseInt24 parses a base-10 integer with the native 32-bit parser and
// narrows it.
func ParseInt24(s string) (Int24, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Int24{}, parseError(s, err)
	}

	return narrowInt24(n)
}
