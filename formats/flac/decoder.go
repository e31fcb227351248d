// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audthin/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of flac.Stream used by source.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	scale      float32

	// pending holds interleaved values of the current frame not yet returned.
	pending []float32
	eof     bool
}

func newSource(stream frameParser, sampleRate, channels, bitsPerSample int) (*source, error) {
	if channels < 1 {
		return nil, audio.ErrInvalidChannels
	}
	if bitsPerSample < 4 || bitsPerSample > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}

	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      float32(uint64(1) << (bitsPerSample - 1)),
	}, nil
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("closing flac stream: %w", err)
	}
	return nil
}

// fill decodes the next frame into pending.
func (s *source) fill() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		s.eof = true
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d subframes, stream has %d channels",
			ErrCorruptFrame, len(f.Subframes), s.channels)
	}

	block := int(f.BlockSize)
	s.pending = s.pending[:0]
	for i := range block {
		for ch := range s.channels {
			sub := f.Subframes[ch]
			if i >= len(sub.Samples) {
				return fmt.Errorf("%w: subframe %d holds %d of %d samples",
					ErrCorruptFrame, ch, len(sub.Samples), block)
			}
			s.pending = append(s.pending, float32(sub.Samples[i])/s.scale)
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.fill(); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if s.eof && len(s.pending) == 0 {
		return written, io.EOF
	}

	return written, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	src, err := newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample))
	if err != nil {
		_ = stream.Close()
		return nil, err
	}

	return src, nil
}
