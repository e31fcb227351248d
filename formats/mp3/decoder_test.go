// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader simulates gomp3.Decoder. chunk caps the bytes per Read so
// odd-sized reads can be exercised.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
	chunk      int
	err        error
}

func newMockReader(sampleRate int, samples []int16) *mockMP3Reader {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: sampleRate, data: data}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}

	end := len(m.data)
	if m.chunk > 0 {
		end = min(end, m.offset+m.chunk)
	}
	n := copy(buf, m.data[m.offset:end])
	m.offset += n

	return n, nil
}

func drain(t *testing.T, s *source, size int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, size)
	for range 1000 {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not MP3 data"), {}} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockReader(44100, nil), sampleRate: 44100}

	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, -32768}
	s := &source{dec: newMockReader(44100, samples), sampleRate: 44100}

	got := drain(t, s, 16)
	want := []float32{0, 0.5, -0.5, -1}

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_ReadSamples_OddChunks(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, -1000, 2000, -2000, 3000, -3000}
	dec := newMockReader(22050, samples)
	dec.chunk = 3
	s := &source{dec: dec, sampleRate: 22050}

	got := drain(t, s, 4)

	if len(got) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(got), len(samples))
	}
	for i, v := range samples {
		if want := float32(v) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	s := &source{dec: &mockMP3Reader{err: boom}, sampleRate: 44100}

	_, err := s.ReadSamples(make([]float32, 8))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockReader(44100, []int16{1}), sampleRate: 44100}

	n, err := s.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 88200)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		s := &source{dec: newMockReader(44100, samples), sampleRate: 44100, buf: make([]byte, 8192)}
		for {
			if _, err := s.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
