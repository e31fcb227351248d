// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files through github.com/go-audio/wav.
//
// Integer PCM at 8, 16, 24 and 32 bits is supported with any channel
// count. WAVE_FORMAT_EXTENSIBLE files are accepted when they carry integer
// PCM. IEEE float and compressed encodings are rejected with
// ErrUnsupportedEncoding.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// Readers that cannot seek are buffered in memory first.
package wav
