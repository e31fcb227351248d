// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides sources and fixtures for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio on demand.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // frames generated so far
	waveform   func(frame int, channel int) float32

	// FailAfter makes ReadSamples return Err once this many frames have
	// been produced. Negative disables the failure.
	FailAfter int
	Err       error

	// ChunkLimit caps the number of values returned per read when > 0.
	ChunkLimit int

	Closed bool
}

// NewMockSource creates a source of frames frames. waveform returns the
// value of a given frame and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
		FailAfter:  -1,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource encodes the frame and channel into each value so tests can
// tell which frame was picked: value = frame/1000 + channel/10.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, RampValue)
}

// RampValue is the waveform used by NewRampSource.
func RampValue(frame, channel int) float32 {
	return float32(frame)/1000 + float32(channel)/10
}

// NewValuesSource replays interleaved values.
func NewValuesSource(sampleRate, channels int, values []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(values)/channels, func(frame, channel int) float32 {
		return values[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAfter >= 0 && m.generated >= m.FailAfter {
		return 0, m.Err
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	limit := len(dst)
	if m.ChunkLimit > 0 && m.ChunkLimit < limit {
		limit = m.ChunkLimit
	}

	toWrite := min(limit/m.channels, m.frames-m.generated)
	if m.FailAfter >= 0 {
		toWrite = min(toWrite, m.FailAfter-m.generated)
	}

	for f := range toWrite {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += toWrite
	written := toWrite * m.channels

	if m.generated >= m.frames {
		return written, io.EOF
	}

	return written, nil
}
