// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams through github.com/mewkiz/flac.
//
// Each FLAC frame is decoded as a whole and its subframes are interleaved
// into float32 values scaled by the stream bit depth.
package flac
