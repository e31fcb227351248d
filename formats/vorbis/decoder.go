// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audthin/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader used by source.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 - 4096%s.channels }

// ReadSamples decodes into dst. oggvorbis counts interleaved values, not
// frames, and always returns a multiple of the channel count.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst) < s.channels {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:len(dst)-len(dst)%s.channels])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis packet: %w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading vorbis header: %w", err)
	}

	if dec.Channels() < 1 {
		return nil, audio.ErrInvalidChannels
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
