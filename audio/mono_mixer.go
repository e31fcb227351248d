// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages the channels of src into a single channel.
type MonoMixer struct {
	src Source
	tmp []float32
	// pending values of a partial frame wait at the start of tmp.
	pending int
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, defaultReadSize),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return max(m.src.BufSize()/max(m.src.Channels(), 1), 1) }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixed source: %w", err)
	}

	return nil
}

// ReadSamples writes up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels < 1 {
		return 0, ErrInvalidChannels
	}
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		grown := make([]float32, needed)
		copy(grown, m.tmp[:m.pending])
		m.tmp = grown
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp[m.pending:])
	total := m.pending + n
	frames := total / channels
	inv := 1 / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			var sum float32
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	m.pending = copy(m.tmp, m.tmp[frames*channels:total])

	return frames, err
}
