// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/aiff"

	"github.com/ik5/audthin/audio"
)

// writeAIFF encodes data with the go-audio encoder and returns the file bytes.
func writeAIFF(t *testing.T, sampleRate, channels, bitDepth int, data []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}

	enc := aiff.NewEncoder(f, sampleRate, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	return raw
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("This is not AIFF data")},
		{name: "empty", data: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	raw := writeAIFF(t, 22050, 2, 16, []int{0, 16384, -16384, 32767})

	src, err := Decoder{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestDecoder_8Bit(t *testing.T) {
	t.Parallel()

	raw := writeAIFF(t, 8000, 1, 8, []int{0, 64, -64, -128})

	src, err := Decoder{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, -1}
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf.Data[i], want[i])
		}
	}
}
