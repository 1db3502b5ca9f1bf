package wavegen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-audio/riff"
)

var (
	// ErrClosed is returned by operations on a closed Writer.
	ErrClosed = errors.New("writer is closed")
	// ErrNotTruncatable is returned by Clear when the sink has no Truncate
	// method.
	ErrNotTruncatable = errors.New("sink can't be truncated")

	errNilSink = errors.New("can't write to a nil sink")
)

// truncater is implemented by *os.File.
type truncater interface {
	Truncate(size int64) error
}

// header is the on-disk layout of the first HeaderSize bytes.
type header struct {
	RiffID   [4]byte
	RiffSize uint32
	WaveID   [4]byte
	FmtID    [4]byte
	FmtSize  uint32
	Fmt      FmtChunk
	DataID   [4]byte
	DataSize uint32
}

// Writer streams samples into a WAVE file. It writes the header on creation,
// appends packed samples to the data chunk and patches the two length fields
// on Finalize.
//
// A Writer is not safe for concurrent use and owns its sink until Close.
type Writer struct {
	w    io.WriteSeeker
	info SampleInfo
	rate SampleRate

	dataLength int64
	closed     bool
}

// NewWriter seeks sink to the start and writes a header describing info at
// rate, with both length fields zero. The sink is left positioned at the
// start of the data chunk.
func NewWriter(sink io.WriteSeeker, info SampleInfo, rate SampleRate) (*Writer, error) {
	if sink == nil {
		return nil, errNilSink
	}

	if info.IsZero() {
		return nil, fmt.Errorf("%w: zero sample info", ErrRange)
	}

	if rate == 0 {
		return nil, fmt.Errorf("%w: zero sample rate", ErrRange)
	}

	// block align and byte rate are 16 and 32 bit header fields
	if size := info.SampleSize(); size > math.MaxUint16 || uint64(rate)*uint64(size) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s at %s overflows the fmt chunk", ErrRange, info, rate)
	}

	w := &Writer{w: sink, info: info, rate: rate}

	if _, err := sink.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to the header: %w", err)
	}

	if err := w.addLE(w.header()); err != nil {
		return nil, fmt.Errorf("failed to write the header: %w", err)
	}

	return w, nil
}

func (w *Writer) header() *header {
	return &header{
		RiffID:  riff.RiffID,
		WaveID:  riff.WavFormatID,
		FmtID:   riff.FmtID,
		FmtSize: fmtChunkSize,
		Fmt:     newFmtChunk(w.info, w.rate),
		DataID:  riff.DataFormatID,
	}
}

// addLE serializes src little endian at the current position.
func (w *Writer) addLE(src any) error {
	if err := binary.Write(w.w, binary.LittleEndian, src); err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// WriteSample appends one frame. The sample must have been built for the
// writer's SampleInfo.
func (w *Writer) WriteSample(s Sample) error {
	if w.closed {
		return ErrClosed
	}

	if !s.info.Equal(w.info) {
		return fmt.Errorf("%w: got %s, writer expects %s", ErrFormatMismatch, s.info, w.info)
	}

	if w.dataLength+int64(len(s.data)) > maxDataLength {
		return fmt.Errorf("%w: data chunk would exceed %d bytes", ErrRange, int64(maxDataLength))
	}

	n, err := w.w.Write(s.data)
	w.dataLength += int64(n)

	if err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}

	return nil
}

// WriteSamples appends the frames in order. It stops at the first failure;
// frames written before it stay written.
func (w *Writer) WriteSamples(samples []Sample) error {
	for i, s := range samples {
		if err := w.WriteSample(s); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}

	return nil
}

// Clear drops all sample data, truncating the sink to the bare header. The
// sink must implement Truncate(int64) error, as *os.File does.
func (w *Writer) Clear() error {
	if w.closed {
		return ErrClosed
	}

	t, ok := w.w.(truncater)
	if !ok {
		return ErrNotTruncatable
	}

	if err := t.Truncate(HeaderSize); err != nil {
		return fmt.Errorf("failed to truncate: %w", err)
	}

	if _, err := w.w.Seek(HeaderSize, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to the data chunk: %w", err)
	}

	w.dataLength = 0

	return w.Finalize()
}

// Finalize patches the RIFF and data lengths with the amount of sample data
// written so far and returns to the previous write position. It may be
// called any number of times.
func (w *Writer) Finalize() error {
	if w.closed {
		return ErrClosed
	}

	pos, err := w.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("failed to get the write position: %w", err)
	}

	if err := w.patch(offsetRiffSize, uint32(w.dataLength)+riffSizeBias); err != nil {
		return err
	}

	if err := w.patch(offsetDataSize, uint32(w.dataLength)); err != nil {
		return err
	}

	if _, err := w.w.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("failed to restore the write position: %w", err)
	}

	return nil
}

func (w *Writer) patch(offset int64, v uint32) error {
	if _, err := w.w.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to offset %d: %w", offset, err)
	}

	return w.addLE(v)
}

// Close finalizes the file once and closes the sink if it is an io.Closer.
// Further calls do nothing and return nil.
func (w *Writer) Close() error {
	if w == nil || w.closed {
		return nil
	}

	err := w.Finalize()
	w.closed = true

	if c, ok := w.w.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close the sink: %w", cerr))
		}
	}

	return err
}

func (w *Writer) SampleInfo() SampleInfo { return w.info }

func (w *Writer) SampleRate() SampleRate { return w.rate }

// ByteRate is the number of data bytes per second.
func (w *Writer) ByteRate() uint32 {
	return uint32(w.rate) * uint32(w.info.SampleSize())
}

// BlockAlign is the size of one frame in bytes.
func (w *Writer) BlockAlign() uint16 {
	return uint16(w.info.SampleSize())
}

// DataLength is the number of sample bytes written so far.
func (w *Writer) DataLength() int64 { return w.dataLength }

// Frames is the number of whole frames written so far.
func (w *Writer) Frames() int64 {
	return w.dataLength / int64(w.info.SampleSize())
}

// Duration is the playing time of the frames written so far.
func (w *Writer) Duration() time.Duration {
	return framesDuration(w.Frames(), w.rate)
}
