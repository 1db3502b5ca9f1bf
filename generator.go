package wavegen

import (
	"errors"
	"fmt"

	"github.com/cwbudde/wavegen/waveform"
)

var errNilWriter = errors.New("can't generate into a nil writer")

// GenerateWave renders floor(durationSeconds * rate) frames of p into w and
// finalizes it. Frame i is sampled at i/rate seconds. channelMask selects the
// channels that carry the signal; the others are written as silence. A nil
// mask enables every channel.
func GenerateWave(w *Writer, p waveform.Parameters, channelMask []bool, durationSeconds float64) error {
	if w == nil {
		return errNilWriter
	}

	if p.IsZero() {
		return fmt.Errorf("%w: zero waveform parameters", ErrRange)
	}

	channels := int(w.info.channels)

	mask := channelMask
	if mask == nil {
		mask = make([]bool, channels)
		for i := range mask {
			mask[i] = true
		}
	}

	if len(mask) != channels {
		return fmt.Errorf("%w: %d mask entries for %s", ErrFormatMismatch, len(mask), w.info)
	}

	count, err := Frames(durationSeconds, w.rate)
	if err != nil {
		return err
	}

	signal := waveform.New(p)
	values := make([]float64, channels)

	for i := 0; i < count; i++ {
		v := signal(float64(i) / float64(w.rate))

		for ch, on := range mask {
			values[ch] = 0
			if on {
				values[ch] = v
			}
		}

		s, err := NewSample(w.info, values)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		if err := w.WriteSample(s); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	return w.Finalize()
}
