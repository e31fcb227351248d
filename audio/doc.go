// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoding abstraction used by the rest of the
// module.
//
// # Source Interface
//
// A Source streams interleaved float32 samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is exhausted. The last read
// may deliver samples together with io.EOF, so callers consume n before
// looking at the error:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    consume(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Buffers
//
// ReadAll drains a Source into a Buffer, which offers random access to
// frames:
//
//	buf, err := audio.ReadAll(src)
//	first := buf.Frame(0) // one value per channel
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("heartbeat.wav")
//
// # Channel Mixing
//
// MonoMixer averages all channels of a Source into one.
package audio
