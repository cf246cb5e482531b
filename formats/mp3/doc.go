// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// Decoding is split in two. A FrameDecoder yields blocks of interleaved
// 16-bit PCM, and Accumulate gathers them into one buffer per channel:
//
//	sample, err := mp3.Accumulate(frameDecoder)
//
// Decoder wires github.com/hajimehoshi/go-mp3 in as the frame decoder:
//
//	file, _ := os.Open("audio.mp3")
//	sample, err := mp3.Decoder{}.Decode(file)
//
// # Output Format
//
//   - Sample format: float32, each value divided by 32768 so it stays in
//     [-1.0, 1.0]
//   - Channels: whatever the frames report. go-mp3 always yields 2, so a
//     mono MP3 read through Decoder comes back as two identical channels.
//     Apply audio.Downmix to get a single channel back.
//   - Sample rate: taken from the first frame
//
// # Errors
//
// Accumulate fails with audio.ErrFormatDrift when the sample rate or the
// channel count changes mid-stream, with ErrNoFrames for an empty stream
// and with audio.ErrExternalIO when the frame decoder fails. Decoder
// reports ErrInvalidStream when go-mp3 cannot find a valid header.
//
// MP3 writing is not supported.
package mp3
