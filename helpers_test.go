package wavegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/cwbudde/wavegen/waveform"
	xriff "golang.org/x/image/riff"
)

// memFile is an in-memory io.WriteSeeker with Truncate and Close, standing in
// for *os.File.
type memFile struct {
	data   []byte
	pos    int64
	closed bool
}

func (m *memFile) Write(p []byte) (int, error) {
	if m.closed {
		return 0, errors.New("write on closed memFile")
	}

	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}

	copy(m.data[m.pos:], p)
	m.pos = end

	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64

	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.data))
	default:
		return 0, fmt.Errorf("bad whence %d", whence)
	}

	if base+offset < 0 {
		return 0, errors.New("negative position")
	}

	m.pos = base + offset

	return m.pos, nil
}

func (m *memFile) Truncate(size int64) error {
	if size < int64(len(m.data)) {
		m.data = m.data[:size]
	}

	return nil
}

func (m *memFile) Close() error {
	m.closed = true
	return nil
}

// seekOnly hides Truncate and Close.
type seekOnly struct {
	io.WriteSeeker
}

var errSinkFull = errors.New("sink full")

// limitedSink accepts writes until limit bytes have been written.
type limitedSink struct {
	memFile
	limit int
}

func (l *limitedSink) Write(p []byte) (int, error) {
	room := l.limit - int(l.pos)
	if room >= len(p) {
		return l.memFile.Write(p)
	}

	if room < 0 {
		room = 0
	}

	n, _ := l.memFile.Write(p[:room])

	return n, errSinkFull
}

type testChunk struct {
	id   string
	size uint32
	data []byte
}

// parseWavChunks walks the top level chunks of a WAVE file.
func parseWavChunks(t *testing.T, data []byte) []testChunk {
	t.Helper()

	form, r, err := xriff.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("riff.NewReader: %v", err)
	}

	if string(form[:]) != "WAVE" {
		t.Fatalf("form type %q, want WAVE", form[:])
	}

	var chunks []testChunk

	for {
		id, size, body, err := r.Next()
		if errors.Is(err, io.EOF) {
			return chunks
		}

		if err != nil {
			t.Fatalf("riff.Next: %v", err)
		}

		payload, err := io.ReadAll(body)
		if err != nil {
			t.Fatalf("read %q: %v", id[:], err)
		}

		chunks = append(chunks, testChunk{id: string(id[:]), size: size, data: payload})
	}
}

func newTestWriter(t *testing.T, info SampleInfo, rate SampleRate) (*Writer, *memFile) {
	t.Helper()

	sink := &memFile{}

	w, err := NewWriter(sink, info, rate)
	if err != nil {
		t.Fatalf("NewWriter(%s, %s): %v", info, rate, err)
	}

	return w, sink
}

func mustInfo(t *testing.T, newInfo func(Channels) (SampleInfo, error), channels Channels) SampleInfo {
	t.Helper()

	info, err := newInfo(channels)
	if err != nil {
		t.Fatal(err)
	}

	return info
}

func mustSample(t *testing.T, info SampleInfo, values ...float64) Sample {
	t.Helper()

	s, err := NewSample(info, values)
	if err != nil {
		t.Fatalf("NewSample(%s, %v): %v", info, values, err)
	}

	return s
}

func mustParameters(t *testing.T, w waveform.Waveform, amplitude, frequency, phase float64) waveform.Parameters {
	t.Helper()

	p, err := waveform.NewParameters(w, amplitude, frequency, phase)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func standard(t *testing.T, w waveform.Waveform) waveform.Parameters {
	t.Helper()

	p, err := waveform.Standard(w)
	if err != nil {
		t.Fatal(err)
	}

	return p
}
