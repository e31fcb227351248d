// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample conversion helpers.
package utils

import "math"

// Float32ToInt16 converts a normalised sample back to 16-bit PCM. It is the
// exact inverse of dividing by 32768, rounding to nearest and clamping to
// the int16 range.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768)

	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
