// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audthin/audio"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM.
const channels = 2

// mp3Reader is the part of gomp3.Decoder used by source.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// pending holds a trailing odd byte from the previous read.
	pending    byte
	hasPending bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	start := 0
	if s.hasPending {
		s.buf[0] = s.pending
		s.hasPending = false
		start = 1
	}

	n, err := s.dec.Read(s.buf[start:])
	n += start

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	if n%2 == 1 {
		s.pending = s.buf[n-1]
		s.hasPending = true
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3 frame: %w", err)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
