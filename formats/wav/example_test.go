// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/internal/audiotest"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	data := audiotest.PCM16WAV(16000, 1, []int16{100, 200, 300, 400, 500})

	sample, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", sample.SampleRate())
	fmt.Printf("Channels: %d\n", sample.Channels())
	fmt.Printf("Length: %d\n", sample.Length())
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Length: 5
}

// Example_encoding writes a stereo sample as 32-bit float WAV and reads it
// back.
func Example_encoding() {
	left := audio.NewSineWave(440, 1000, 0.5)
	right := audio.NewSineWave(440, 1000, 0)
	stereo, err := audio.NewDual(left, right)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := wav.Encode(f, stereo); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	if _, err := f.Seek(0, 0); err != nil {
		fmt.Println(err)
		return
	}
	decoded, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Channels: %d, Length: %d\n", decoded.Channels(), decoded.Length())
	// Output:
	// Channels: 2, Length: 1000
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("definitely not a RIFF file")))
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("not a WAV file")
	}
	// Output:
	// not a WAV file
}

// Example_sampleConversion shows how 16-bit PCM maps to float32.
func Example_sampleConversion() {
	data := audiotest.PCM16WAV(8000, 1, []int16{-32768, -16384, 0, 16384, 32767})

	sample, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}

	w, _ := sample.Waveform(0)
	for _, v := range w {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// -1.0000
	// -0.5000
	// 0.0000
	// 0.5000
	// 1.0000
}
