package numeric

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrRange is returned when a value cannot be represented in the target width.
	ErrRange = errors.New("value out of range")
	// ErrFormat is returned when a numeric string cannot be parsed.
	ErrFormat = errors.New("invalid number format")
	// ErrDivideByZero is returned by integer division and remainder by zero.
	ErrDivideByZero = errors.New("division by zero")
)

// parseError maps a strconv failure onto the package sentinels.
func parseError(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrRange, s)
	}

	return fmt.Errorf("%w: %q", ErrFormat, s)
}
