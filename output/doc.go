// SPDX-License-Identifier: EPL-2.0

// Package output renders picked frames as text lines.
//
// The default layout is "index;value", one line per pick. Frames with more
// than one channel join their values with ",":
//
//	0;0.0123
//	1;-0.5,0.25
//
// Values are written in one of three documented forms: the shortest
// decimal that reads back to the same float32 (FormatFloat), a fixed number
// of decimals (FormatFixed) or a signed 16-bit PCM integer (FormatInt16).
package output
