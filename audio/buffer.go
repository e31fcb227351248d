// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	defaultReadSize = 4096
	// maxEmptyReads bounds consecutive reads that return nothing.
	maxEmptyReads = 100
)

// Buffer is a fully decoded stream held in memory.
// Data is interleaved: frame i occupies Data[i*Channels : (i+1)*Channels].
type Buffer struct {
	Data       []float32
	Channels   int
	SampleRate int
}

// Len returns the number of frames.
func (b *Buffer) Len() int {
	if b == nil || b.Channels < 1 {
		return 0
	}

	return len(b.Data) / b.Channels
}

// Frame returns the channel values of frame i. The slice aliases Data.
func (b *Buffer) Frame(i int) []float32 {
	start := i * b.Channels
	return b.Data[start : start+b.Channels : start+b.Channels]
}

// ReadAll drains src into a Buffer. Trailing values that do not fill a
// whole frame are dropped.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	size := src.BufSize()
	if size <= 0 {
		size = defaultReadSize
	}
	size -= size % channels
	if size == 0 {
		size = channels
	}

	buf := &Buffer{
		Channels:   channels,
		SampleRate: src.SampleRate(),
	}
	chunk := make([]float32, size)
	empty := 0

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			buf.Data = append(buf.Data, chunk[:n]...)
			empty = 0
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
			}
		}
	}

	buf.Data = buf.Data[:buf.Len()*channels]

	return buf, nil
}
