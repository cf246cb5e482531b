// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files into audio.MultiChannel samples.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	sample, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The whole stream is decoded into memory. The library yields interleaved
// values:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// which are split into one WaveForm per channel.
//
// # Output Format
//
//   - Sample format: float32, clipped to [-1.0, 1.0] by the library
//   - Channels: depends on the file
//   - Sample rate: depends on the file
//
// To fold a multi-channel file to mono:
//
//	mono, err := audio.Downmix{}.Apply(sample)
//
// # Limitations
//
// Vorbis encoding is not supported.
package vorbis
