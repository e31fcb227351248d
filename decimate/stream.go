// SPDX-License-Identifier: EPL-2.0

package decimate

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/ik5/audthin/audio"
)

// maxEmptyReads bounds consecutive reads that return nothing.
const maxEmptyReads = 100

// Stream yields the same picks as Decimator straight from a Source, holding
// one read chunk in memory instead of the whole file.
type Stream struct {
	src      audio.Source
	rate     int
	target   int
	channels int

	chunk  []float32
	carry  int // values of an incomplete frame at the front of chunk
	start  int // source frame index of chunk[0]
	frames int // whole frames in chunk
	eof    bool

	k int
}

// NewStream validates the rates and returns a Stream reading from src.
func NewStream(src audio.Source, targetRate int, opts ...Option) (*Stream, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, audio.ErrInvalidChannels
	}
	if err := Validate(src.SampleRate(), targetRate, opts...); err != nil {
		return nil, err
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size += channels - size%channels

	return &Stream{
		src:      src,
		rate:     src.SampleRate(),
		target:   targetRate,
		channels: channels,
		chunk:    make([]float32, size),
	}, nil
}

// Next returns the next pick, or io.EOF after the last one. Frame is a copy
// owned by the caller.
func (s *Stream) Next() (Pick, error) {
	offset := Offset(s.k, s.rate, s.target)

	for offset >= s.start+s.frames {
		if s.eof {
			return Pick{}, io.EOF
		}
		if err := s.advance(); err != nil {
			return Pick{}, err
		}
	}

	base := (offset - s.start) * s.channels
	frame := make([]float32, s.channels)
	copy(frame, s.chunk[base:base+s.channels])

	p := Pick{Index: s.k, Offset: offset, Frame: frame}
	s.k++

	return p, nil
}

// advance replaces the current chunk with the next read.
func (s *Stream) advance() error {
	used := s.frames * s.channels
	copy(s.chunk, s.chunk[used:used+s.carry])
	s.start += s.frames
	s.frames = 0

	for empty := 0; ; empty++ {
		n, err := s.src.ReadSamples(s.chunk[s.carry:])
		total := s.carry + n
		s.frames = total / s.channels
		s.carry = total % s.channels

		if errors.Is(err, io.EOF) {
			s.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading samples at frame %d: %w", s.start, err)
		}
		if s.frames > 0 {
			return nil
		}
		if empty >= maxEmptyReads {
			return io.ErrNoProgress
		}
	}
}

// All yields picks until the source is exhausted. A read failure ends the
// sequence with a zero Pick and the error.
func (s *Stream) All() iter.Seq2[Pick, error] {
	return func(yield func(Pick, error) bool) {
		for {
			p, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(p, err) || err != nil {
				return
			}
		}
	}
}
