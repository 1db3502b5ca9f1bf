// Package numeric provides fixed-width numeric types that Go has no native
// representation for: 24-bit signed and unsigned integers and IEEE-754
// binary16 half-precision floats.
//
// Construction from a wider native value is checked: integers that do not
// fit fail with ErrRange. Arithmetic round-trips through the native type and
// narrows again with the same check. Half conversions are lossy in the usual
// IEEE way (rounding, subnormals, saturation to infinity) and never fail.
//
// Equality and hashing are binary: two values are equal exactly when their
// packed little-endian bytes are.
package numeric
