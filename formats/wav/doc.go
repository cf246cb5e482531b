// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Reading and writing go through github.com/go-audio/wav; this package maps
// its integer buffers onto audio.MultiChannel samples.
//
// # Supported Formats
//
// Decoding:
//   - PCM 8-bit (unsigned), 16-bit, 24-bit and 32-bit
//   - IEEE float 32-bit, read bit for bit
//   - Any channel count and sample rate
//
// Encoding always produces IEEE float 32-bit (format tag 3), interleaved
// frame by frame.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	sample, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	left, _ := sample.Waveform(0)
//
// Integer PCM is normalized by 2^(bits-1), so 16-bit values map onto
// [-1.0, 1.0). Inputs that cannot seek are read into memory first.
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	defer file.Close()
//	err := wav.Encode(file, sample)
//
// Encode needs an io.WriteSeeker because the RIFF and data chunk sizes are
// patched once all frames are written.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: format tag or bit depth not handled; also
//     matches audio.ErrUnsupportedFormat
//   - ErrMissingData: no data chunk was found
//
// Encoding failures of the underlying writer match audio.ErrExternalIO.
package wav
