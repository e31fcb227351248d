// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits interleaved stereo, so every Source from this
// package reports two channels, even for mono files (both channels then
// carry the same signal).
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
