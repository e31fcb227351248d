// SPDX-License-Identifier: EPL-2.0

package decimate

import (
	"fmt"
	"iter"

	"github.com/ik5/audthin/audio"
)

// Pick is one selected frame.
type Pick struct {
	// Index is the output position, dense from 0.
	Index int
	// Offset is the source frame the pick was taken from.
	Offset int
	// Frame holds one value per channel.
	Frame []float32
}

type options struct {
	strict bool
}

// Option configures a Decimator or Stream.
type Option func(*options)

// WithStrict rejects targets above the source rate instead of repeating
// source frames.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Offset returns the source frame of output k: floor(k * sourceRate / targetRate).
// Rates must be positive and k non-negative.
func Offset(k, sourceRate, targetRate int) int {
	return int(int64(k) * int64(sourceRate) / int64(targetRate))
}

// Count returns how many picks a buffer of n frames yields, the smallest k
// with Offset(k) >= n.
func Count(n, sourceRate, targetRate int) int {
	if n <= 0 {
		return 0
	}

	num := int64(n) * int64(targetRate)
	den := int64(sourceRate)

	return int((num + den - 1) / den)
}

// Validate checks a rate pair.
func Validate(sourceRate, targetRate int, opts ...Option) error {
	if targetRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTargetRate, targetRate)
	}
	if sourceRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSourceRate, sourceRate)
	}
	if buildOptions(opts).strict && targetRate > sourceRate {
		return fmt.Errorf("%w: %d Hz > %d Hz", ErrUpsample, targetRate, sourceRate)
	}

	return nil
}

// Decimator walks a Buffer by floor stepping. It applies no filtering or
// interpolation.
type Decimator struct {
	buf    *audio.Buffer
	target int
	k      int
}

// New validates the rates and returns a Decimator over buf.
func New(buf *audio.Buffer, targetRate int, opts ...Option) (*Decimator, error) {
	if buf.Channels < 1 {
		return nil, audio.ErrInvalidChannels
	}
	if err := Validate(buf.SampleRate, targetRate, opts...); err != nil {
		return nil, err
	}

	return &Decimator{buf: buf, target: targetRate}, nil
}

// Len is the total number of picks.
func (d *Decimator) Len() int {
	return Count(d.buf.Len(), d.buf.SampleRate, d.target)
}

// Next returns the next pick. Frame aliases the buffer.
func (d *Decimator) Next() (Pick, bool) {
	offset := Offset(d.k, d.buf.SampleRate, d.target)
	if offset >= d.buf.Len() {
		return Pick{}, false
	}

	p := Pick{Index: d.k, Offset: offset, Frame: d.buf.Frame(offset)}
	d.k++

	return p, true
}

// Reset rewinds to the first pick.
func (d *Decimator) Reset() {
	d.k = 0
}

// All yields the remaining picks.
func (d *Decimator) All() iter.Seq[Pick] {
	return func(yield func(Pick) bool) {
		for {
			p, ok := d.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
