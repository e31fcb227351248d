// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/ik5/audthin/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDecoder struct{ name string }

func (d mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(8000, 1, 1), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("WAV", mockDecoder{name: "wav"})

	d, ok := reg.Get("wav")
	require.True(t, ok)
	assert.Equal(t, mockDecoder{name: "wav"}, d)

	_, ok = reg.Get("mp3")
	assert.False(t, ok)
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("ogg", mockDecoder{name: "first"})
	reg.Register("ogg", mockDecoder{name: "second"})

	d, _ := reg.Get("ogg")
	assert.Equal(t, mockDecoder{name: "second"}, d)
	assert.Equal(t, []string{"ogg"}, reg.Formats())
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("ogg", mockDecoder{name: "ogg"})

	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "/tmp/Heartbeat.ogg"},
		{path: "/tmp/Heartbeat.OGG"},
		{path: "relative/dir.d/file.ogg"},
		{path: "/tmp/Heartbeat.mp3", wantErr: true},
		{path: "/tmp/Heartbeat", wantErr: true},
		{path: "/tmp/archive.ogg/", wantErr: true},
	}

	for _, tt := range tests {
		d, err := reg.ForPath(tt.path)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, mockDecoder{name: "ogg"}, d, tt.path)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register(fmt.Sprintf("fmt%d", i), mockDecoder{})
		}()
		go func() {
			defer wg.Done()
			reg.Get(fmt.Sprintf("fmt%d", i))
			reg.Formats()
		}()
	}
	wg.Wait()

	assert.Len(t, reg.Formats(), 20)
}

func TestBuffer_Frames(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Data: []float32{1, 2, 3, 4, 5, 6}, Channels: 3, SampleRate: 8000}

	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, []float32{4, 5, 6}, buf.Frame(1))

	frame := buf.Frame(0)
	assert.Equal(t, 3, cap(frame), "frame must not expose the next frame")

	var nilBuf *Buffer
	assert.Zero(t, nilBuf.Len())
	assert.Zero(t, (&Buffer{Data: []float32{1}}).Len())
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(44100, 2, 10000)
	src.ChunkLimit = 333

	buf, err := ReadAll(src)
	require.NoError(t, err)

	assert.Equal(t, 44100, buf.SampleRate)
	assert.Equal(t, 2, buf.Channels)
	require.Equal(t, 10000, buf.Len())
	assert.Equal(t, []float32{audiotest.RampValue(9999, 0), audiotest.RampValue(9999, 1)}, buf.Frame(9999))
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	buf, err := ReadAll(audiotest.NewSilentSource(22050, 1, 0))
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
	assert.Equal(t, 22050, buf.SampleRate)
}

func TestReadAll_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad block")
	src := audiotest.NewSilentSource(8000, 1, 100)
	src.FailAfter = 10
	src.Err = boom

	_, err := ReadAll(src)
	assert.ErrorIs(t, err, boom)

	_, err = ReadAll(audiotest.NewSilentSource(8000, 0, 1))
	assert.ErrorIs(t, err, ErrInvalidChannels)
}

type ragged struct{ *audiotest.MockSource }

func (r ragged) BufSize() int { return 0 }

func (r ragged) ReadSamples(dst []float32) (int, error) {
	n, err := r.MockSource.ReadSamples(dst)
	if err == io.EOF && n > 0 {
		return n - 1, err // drop the last value, leaving a partial frame
	}
	return n, err
}

func TestReadAll_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	buf, err := ReadAll(ragged{audiotest.NewSilentSource(8000, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, 2, buf.Len())
	assert.Len(t, buf.Data, 4)
}

type stalledSource struct{ *audiotest.MockSource }

func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }

func TestReadAll_NoProgress(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(stalledSource{audiotest.NewSilentSource(8000, 1, 10)})
	assert.ErrorIs(t, err, io.ErrNoProgress)
}
