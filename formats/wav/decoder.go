// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audthin/audio"
	"github.com/ik5/audthin/internal/intpcm"
	"github.com/ik5/audthin/internal/seekable"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := seekable.From(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	if err := checkHeader(rs); err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	if dec.NumChans < 1 {
		return nil, ErrNoChannels
	}

	src, err := intpcm.New(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth), intpcm.Unsigned8)
	if errors.Is(err, intpcm.ErrUnsupportedBitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return src, nil
}

// checkHeader verifies the RIFF/WAVE preamble and rewinds rs.
func checkHeader(rs io.ReadSeeker) error {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("locating wav header: %w", err)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return ErrNotWavFile
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding wav data: %w", err)
	}

	return nil
}
