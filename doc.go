// SPDX-License-Identifier: EPL-2.0

// Package audthin thins decoded audio down to a low rate and prints the
// picked amplitudes as text, one "index;value" line per pick.
//
// # Quick Start
//
//	n, err := audthin.ExtractFile("Heartbeat.ogg", os.Stdout, audthin.DefaultConfig())
//
// With the default configuration a 44.1 kHz file yields 150 lines per
// second of audio, taken from source frames 0, 294, 588 and so on.
//
// # Pipeline
//
// An Extractor runs three steps:
//
//  1. decode: a decoder from the formats registry, chosen by file
//     extension, turns the file into an audio.Source;
//  2. thin: decimate picks frame floor(k * sourceRate / targetRate) for
//     k = 0, 1, 2, ... while that frame exists;
//  3. print: output.Printer writes each pick.
//
// By default the whole file is decoded before the first line is written,
// so a file that fails to decode produces no output. Config.Stream picks
// while decoding and keeps memory flat for long inputs.
//
// # Supported Formats
//
//   - WAV via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// # Output
//
// See package output for the exact value serialization.
package audthin
