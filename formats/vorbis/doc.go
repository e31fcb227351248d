// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Samples arrive as interleaved float32 values already in [-1, 1], so no
// integer conversion is involved.
//
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
