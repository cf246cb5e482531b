// SPDX-License-Identifier: EPL-2.0

// Package audmix ties the audio model to files on disk.
//
// The sample model and the mixing engine live in the audio subpackage; the
// codecs live under formats/. This package adds the two file operations
// most programs need:
//
//	// Decode by extension (wav, mp3, ogg, aif, aiff)
//	voice, err := audmix.Open("voice.mp3")
//
//	// Mix and write 32-bit float WAV
//	comp := audio.NewComposition()
//	comp.AddTrackSec(voice, 0)
//	comp.AddTrackSec(voice, 1.5)
//	err = audmix.Export(comp, "mix.wav")
//
// # Supported Formats
//
// Import:
//   - WAV (PCM 8/16/24/32-bit, IEEE float 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//
// Export is always WAV, IEEE float 32-bit, with the sample's own rate and
// channel count.
//
// # Format Registry
//
// Open looks decoders up in DefaultRegistry. Additional formats can be
// registered on it:
//
//	audmix.DefaultRegistry().Register("flac", myFlacDecoder)
//
// # Errors
//
// File system failures match audio.ErrExternalIO, unknown extensions match
// audio.ErrUnsupportedFormat, and samples that cannot be exported report
// audio.ErrShapeMismatch or audio.ErrInvalidChannel.
//
// See the individual subpackages for more detailed documentation.
package audmix
