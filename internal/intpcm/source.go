// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio integer PCM decoders to float sources.
package intpcm

import (
	"errors"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Byte8 tells how a container stores 8-bit samples. go-audio hands them
// over as the raw byte value 0..255 either way.
type Byte8 int

const (
	// Signed8 bytes hold two's complement samples (AIFF).
	Signed8 Byte8 = iota
	// Unsigned8 bytes are biased by 128 (WAV).
	Unsigned8
)

// Source converts integer PCM read from a Reader to float32 in [-1,1].
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	offset     int
	signed8    bool
	intBuf     *goaudio.IntBuffer
	closer     io.Closer
}

// Scale returns the divisor that maps bitDepth-bit signed integers to [-1,1].
func Scale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1)), nil
	default:
		return 0, ErrUnsupportedBitDepth
	}
}

// New wraps dec. layout only matters when bitDepth is 8.
func New(dec Reader, sampleRate, channels, bitDepth int, layout Byte8) (*Source, error) {
	scale, err := Scale(bitDepth)
	if err != nil {
		return nil, err
	}

	s := &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      scale,
	}
	if bitDepth == 8 {
		switch layout {
		case Unsigned8:
			s.offset = 128
		default:
			s.signed8 = true
		}
	}

	return s, nil
}

// WithCloser attaches c so that Close releases it.
func (s *Source) WithCloser(c io.Closer) *Source {
	s.closer = c
	return s
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.signed8 {
			v = int(int8(v))
		}
		dst[i] = float32(v-s.offset) / s.scale
	}

	// go-audio reports the end of data as an empty read without error, so a
	// short read only means the chunk reader returned less this time.
	if errors.Is(err, io.EOF) {
		return n, io.EOF
	}

	return n, err
}
