// SPDX-License-Identifier: EPL-2.0

// Package decimate thins audio to a lower rate by nearest-floor selection.
//
// Output k is taken from source frame floor(k * R / T), where R is the
// source rate and T the target rate, for as long as that offset lies
// inside the source. No low-pass filtering or interpolation happens, so the
// result is a visual/data thinning of the signal rather than a proper
// resample.
//
// For N=10 frames at R=10 Hz and T=5 Hz the picks come from frames
// 0, 2, 4, 6 and 8.
//
// When T is above R consecutive picks repeat the same source frame.
// WithStrict turns that case into ErrUpsample.
//
// Decimator works on a decoded audio.Buffer; Stream produces the same
// sequence directly from an audio.Source.
package decimate
