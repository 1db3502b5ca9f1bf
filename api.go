package wavegen

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var errNilBuffer = errors.New("can't add a nil buffer")

// Format returns the go-audio description of the file.
func (h Header) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(h.Info.channels),
		SampleRate:  int(h.SampleRate),
	}
}

// Format returns the go-audio description of the writer's output.
func (w *Writer) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(w.info.channels),
		SampleRate:  int(w.rate),
	}
}

func (w *Writer) checkBufferFormat(format *audio.Format, n int) error {
	channels := int(w.info.channels)

	if format != nil && format.NumChannels != channels {
		return fmt.Errorf("%w: buffer has %d channels, writer %d", ErrFormatMismatch, format.NumChannels, channels)
	}

	if n%channels != 0 {
		return fmt.Errorf("%w: %d values is not a whole number of %d-channel frames", ErrFormatMismatch, n, channels)
	}

	return nil
}

// WriteBuffer quantises an interleaved buffer of unit amplitudes frame by
// frame, as NewSample does.
func (w *Writer) WriteBuffer(buf *audio.Float32Buffer) error {
	if buf == nil {
		return errNilBuffer
	}

	if err := w.checkBufferFormat(buf.Format, len(buf.Data)); err != nil {
		return err
	}

	channels := int(w.info.channels)
	values := make([]float64, channels)

	for i := 0; i < len(buf.Data); i += channels {
		for ch := range values {
			values[ch] = float64(buf.Data[i+ch])
		}

		s, err := NewSample(w.info, values)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i/channels, err)
		}

		if err := w.WriteSample(s); err != nil {
			return fmt.Errorf("frame %d: %w", i/channels, err)
		}
	}

	return nil
}

// WriteIntBuffer packs raw PCM values without scaling. Every value must fit
// the writer's bit depth; 8-bit values are unsigned.
func (w *Writer) WriteIntBuffer(buf *audio.IntBuffer) error {
	if buf == nil {
		return errNilBuffer
	}

	if w.info.format != FormatPCM {
		return fmt.Errorf("%w: integer buffer for %s", ErrFormatMismatch, w.info)
	}

	if err := w.checkBufferFormat(buf.Format, len(buf.Data)); err != nil {
		return err
	}

	channels := int(w.info.channels)
	width := w.info.bitDepth.Bytes()
	frame := make([]byte, w.info.SampleSize())

	for i := 0; i < len(buf.Data); i += channels {
		for ch := 0; ch < channels; ch++ {
			if err := w.info.putInt(frame[ch*width:], int64(buf.Data[i+ch])); err != nil {
				return fmt.Errorf("frame %d channel %d: %w", i/channels, ch, err)
			}
		}

		if err := w.WriteSample(Sample{info: w.info, data: frame}); err != nil {
			return fmt.Errorf("frame %d: %w", i/channels, err)
		}
	}

	return nil
}

// FullBuffer reads every remaining frame into a buffer of unit amplitudes.
// The entire data chunk is held in memory.
func (d *Reader) FullBuffer() (*audio.Float32Buffer, error) {
	samples, err := d.ReadSamples()
	if err != nil {
		return nil, err
	}

	buf := &audio.Float32Buffer{
		Format:         d.header.Format(),
		Data:           make([]float32, 0, len(samples)*int(d.header.Info.channels)),
		SourceBitDepth: int(d.header.Info.bitDepth),
	}

	for _, s := range samples {
		for _, v := range s.Normalized() {
			buf.Data = append(buf.Data, float32(v))
		}
	}

	return buf, nil
}

// IntBuffer reads every remaining frame as raw PCM values. Float files are
// rejected with ErrFormatMismatch.
func (d *Reader) IntBuffer() (*audio.IntBuffer, error) {
	if d.header.Info.format != FormatPCM {
		return nil, fmt.Errorf("%w: integer buffer for %s", ErrFormatMismatch, d.header.Info)
	}

	samples, err := d.ReadSamples()
	if err != nil {
		return nil, err
	}

	buf := &audio.IntBuffer{
		Format:         d.header.Format(),
		Data:           make([]int, 0, len(samples)*int(d.header.Info.channels)),
		SourceBitDepth: int(d.header.Info.bitDepth),
	}

	for _, s := range samples {
		for _, v := range s.Values() {
			buf.Data = append(buf.Data, int(v))
		}
	}

	return buf, nil
}
