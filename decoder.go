package wavegen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/riff"
)

var (
	errNilSource      = errors.New("can't read from a nil source")
	errTruncatedFrame = errors.New("data chunk ends inside a frame")
)

// Header is the decoded layout of a WAVE file.
type Header struct {
	Fmt        FmtChunk
	Info       SampleInfo
	SampleRate SampleRate
	// RiffSize and DataLength are the length fields as stored.
	RiffSize   uint32
	DataLength uint32
}

// Frames is the number of whole frames in the data chunk.
func (h Header) Frames() int64 {
	size := h.Info.SampleSize()
	if size == 0 {
		return 0
	}

	return int64(h.DataLength) / int64(size)
}

// Duration is the playing time of the data chunk.
func (h Header) Duration() time.Duration {
	return framesDuration(h.Frames(), h.SampleRate)
}

// Reader decodes the samples of a WAVE file written in one of the layouts
// Writer produces. Chunks other than fmt and data are skipped.
type Reader struct {
	r      io.ReadSeeker
	parser *riff.Parser
	header Header
	data   *riff.Chunk
	frame  []byte
}

// NewReader rewinds r and reads headers up to the start of the data chunk.
func NewReader(r io.ReadSeeker) (*Reader, error) {
	if r == nil {
		return nil, errNilSource
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind: %w", err)
	}

	d := &Reader{r: r, parser: riff.New(r)}
	if err := d.readHeaders(); err != nil {
		return nil, err
	}

	d.frame = make([]byte, d.header.Info.SampleSize())

	return d, nil
}

// ReadHeader decodes and validates the header of r.
func ReadHeader(r io.ReadSeeker) (Header, error) {
	d, err := NewReader(r)
	if err != nil {
		return Header{}, err
	}

	return d.header, nil
}

func (d *Reader) Header() Header { return d.header }

func (d *Reader) readHeaders() error {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return fmt.Errorf("failed to read chunk ID and size: %w", err)
	}

	if id != riff.RiffID {
		return fmt.Errorf("%w: %q is not a RIFF file", ErrUnsupported, id[:])
	}

	d.parser.ID = id
	d.parser.Size = size
	d.header.RiffSize = size

	if err := binary.Read(d.r, binary.BigEndian, &d.parser.Format); err != nil {
		return fmt.Errorf("failed to read format: %w", err)
	}

	if d.parser.Format != riff.WavFormatID {
		return fmt.Errorf("%w: %q is not a WAVE form", ErrUnsupported, d.parser.Format[:])
	}

	var sawFmt bool

	for {
		id, size, err := d.parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: no data chunk", ErrUnsupported)
			}

			return fmt.Errorf("failed to read chunk ID and size: %w", err)
		}

		chunk := &riff.Chunk{ID: id, Size: int(size), R: io.LimitReader(d.r, int64(size))}

		switch id {
		case riff.FmtID:
			if err := d.processFmtChunk(chunk); err != nil {
				return err
			}

			sawFmt = true
		case riff.DataFormatID:
			if !sawFmt {
				return fmt.Errorf("%w: data chunk before fmt chunk", ErrUnsupported)
			}

			d.header.DataLength = size
			d.data = chunk

			return nil
		default:
			// pad byte included
			if _, err := io.CopyN(io.Discard, d.r, int64(size)+int64(size&1)); err != nil {
				return fmt.Errorf("failed to skip %q chunk: %w", id[:], err)
			}
		}
	}
}

func (d *Reader) processFmtChunk(chunk *riff.Chunk) error {
	if chunk.Size < fmtChunkSize {
		return fmt.Errorf("%w: fmt chunk of %d bytes", ErrUnsupported, chunk.Size)
	}

	f, err := decodeFmtChunk(chunk)
	if err != nil {
		return fmt.Errorf("failed to decode fmt chunk: %w", err)
	}

	chunk.Drain()

	if chunk.Size&1 == 1 {
		if _, err := io.CopyN(io.Discard, d.r, 1); err != nil {
			return fmt.Errorf("failed to skip fmt padding: %w", err)
		}
	}

	info, err := f.SampleInfo()
	if err != nil {
		return err
	}

	d.parser.NumChannels = f.NumChannels
	d.parser.SampleRate = f.SampleRate
	d.parser.AvgBytesPerSec = f.AvgBytesPerSec
	d.parser.BlockAlign = f.BlockAlign
	d.parser.BitsPerSample = f.BitsPerSample
	d.parser.WavAudioFormat = f.FormatTag

	d.header.Fmt = f
	d.header.Info = info
	d.header.SampleRate = SampleRate(f.SampleRate)

	return nil
}

func decodeFmtChunk(chunk *riff.Chunk) (FmtChunk, error) {
	var f FmtChunk

	if err := chunk.ReadLE(&f.FormatTag); err != nil {
		return f, fmt.Errorf("failed to read wav format: %w", err)
	}

	if err := chunk.ReadLE(&f.NumChannels); err != nil {
		return f, fmt.Errorf("failed to read channels: %w", err)
	}

	if err := chunk.ReadLE(&f.SampleRate); err != nil {
		return f, fmt.Errorf("failed to read sample rate: %w", err)
	}

	if err := chunk.ReadLE(&f.AvgBytesPerSec); err != nil {
		return f, fmt.Errorf("failed to read avg bytes/sec: %w", err)
	}

	if err := chunk.ReadLE(&f.BlockAlign); err != nil {
		return f, fmt.Errorf("failed to read block align: %w", err)
	}

	if err := chunk.ReadLE(&f.BitsPerSample); err != nil {
		return f, fmt.Errorf("failed to read bit depth: %w", err)
	}

	return f, nil
}

// ReadSample returns the next frame, or io.EOF after the last one.
func (d *Reader) ReadSample() (Sample, error) {
	_, err := io.ReadFull(d.data, d.frame)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Sample{}, errTruncatedFrame
	case err != nil:
		return Sample{}, err
	}

	return SampleFromBytes(d.header.Info, d.frame)
}

// ReadSamples reads every remaining frame.
func (d *Reader) ReadSamples() ([]Sample, error) {
	samples := make([]Sample, 0, d.header.Frames())

	for {
		s, err := d.ReadSample()
		if errors.Is(err, io.EOF) {
			return samples, nil
		}

		if err != nil {
			return samples, fmt.Errorf("frame %d: %w", len(samples), err)
		}

		samples = append(samples, s)
	}
}
