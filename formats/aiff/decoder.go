// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audthin/audio"
	"github.com/ik5/audthin/internal/intpcm"
	"github.com/ik5/audthin/internal/seekable"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := seekable.From(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	src, err := intpcm.New(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth), intpcm.Signed8)
	if errors.Is(err, intpcm.ErrUnsupportedBitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}
	if err != nil {
		return nil, fmt.Errorf("opening aiff pcm: %w", err)
	}

	return src, nil
}
