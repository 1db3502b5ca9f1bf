package wavegen

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/wavegen/numeric"
)

// HeaderSize is the size of the RIFF, fmt and data chunk headers that
// precede the sample data.
const HeaderSize = 44

const (
	// offsets of the two length fields patched by Finalize
	offsetRiffSize = 4
	offsetDataSize = 40

	// riffSizeBias is what the RIFF size counts besides the sample data.
	riffSizeBias = HeaderSize - 8

	maxDataLength = math.MaxUint32 - riffSizeBias
)

var (
	// ErrRange reports a value outside its permitted domain.
	ErrRange = numeric.ErrRange
	// ErrFormat reports text that could not be parsed.
	ErrFormat = numeric.ErrFormat
	// ErrFormatMismatch reports a sample or mask whose shape does not match
	// the target SampleInfo.
	ErrFormatMismatch = errors.New("sample format mismatch")
	// ErrUnsupported reports a WAVE layout this package does not handle.
	ErrUnsupported = errors.New("unsupported wav layout")
)

// Frames returns how many frames a signal of the given length holds at rate,
// rounding down.
func Frames(durationSeconds float64, rate SampleRate) (int, error) {
	if math.IsNaN(durationSeconds) || durationSeconds < 0 {
		return 0, fmt.Errorf("%w: duration %g s", ErrRange, durationSeconds)
	}

	n := math.Floor(durationSeconds * float64(rate))
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: duration %g s at %s", ErrRange, durationSeconds, rate)
	}

	return int(n), nil
}

func framesDuration(frames int64, rate SampleRate) time.Duration {
	if rate == 0 {
		return 0
	}

	return time.Duration(frames) * time.Second / time.Duration(rate)
}
