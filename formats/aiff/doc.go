// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Signed integer PCM at 8, 16, 24 and 32 bits is supported. Samples are
// normalised to [-1, 1] by the bit depth of the file.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
package aiff
