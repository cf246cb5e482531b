// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

// Example_dual demonstrates placing a tone on the left channel only.
func Example_dual() {
	tone := audio.NewSineWave(440, audio.DefaultSampleRate, 0.5)
	silence := audio.NewSineWave(440, audio.DefaultSampleRate, 0)

	left, err := audio.NewDual(tone, silence)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Channels: %d\n", left.Channels())
	fmt.Printf("Length: %d samples\n", left.Length())
	fmt.Printf("Sample rate: %d Hz\n", left.SampleRate())
	// Output:
	// Channels: 2
	// Length: 44100 samples
	// Sample rate: 44100 Hz
}

// Example_composition schedules one track three times, one second apart.
func Example_composition() {
	track := audio.NewSineWave(440, audio.DefaultSampleRate/2, 0.5)

	comp := audio.NewComposition()
	id, _ := comp.AddTrack(track, 0)
	_ = comp.AddTrackIDSec(id, 1.0)
	_ = comp.AddTrackIDSec(id, 2.0)

	fmt.Printf("Tracks: %d\n", comp.Tracks())
	fmt.Printf("Starts: %v\n", comp.Starts(id))
	fmt.Printf("Length: %.1f seconds\n", float64(comp.Length())/float64(comp.SampleRate()))
	// Output:
	// Tracks: 1
	// Starts: [0 44100 88200]
	// Length: 2.5 seconds
}

// Example_shapeMismatch shows validation when mixing incompatible tracks.
func Example_shapeMismatch() {
	mono := audio.NewSineWave(440, 100, 0.5)
	stereo, _ := audio.NewDual(mono, mono)

	comp := audio.NewComposition()
	_, _ = comp.AddTrack(stereo, 0)

	_, err := comp.AddTrack(mono, 0)
	fmt.Println(errors.Is(err, audio.ErrShapeMismatch))
	// Output:
	// true
}

// Example_echo demonstrates the echo train produced by LinearFadeEcho.
func Example_echo() {
	voice := audio.NewWaveForm(8000, audiotest.Constant(4, 1))

	echo, _ := audio.NewLinearFadeEcho(4, 0.25)
	wet, _ := echo.Apply(voice)

	w, _ := wet.Waveform(0)
	for i := 0; i < len(w); i += 4 {
		fmt.Printf("%d: %.2f\n", i, w[i])
	}
	// Output:
	// 0: 0.00
	// 4: 0.75
	// 8: 0.50
	// 12: 0.25
}

// Example_lift applies a single channel transform to a stereo sample.
func Example_lift() {
	stereo, _ := audio.FromWaveforms(8000, [][]float32{{0.1, 0.2}, {0.3, 0.4}})

	invert := audio.WaveformEffectFunc(func(w []float32, rate int) (audio.Sample, error) {
		out := make([]float32, len(w))
		for i, v := range w {
			out[i] = -v
		}
		return audio.NewWaveForm(rate, out), nil
	})

	out, _ := audio.Lift(invert).Apply(stereo)
	waves, _ := audio.Waveforms(out)
	fmt.Println(waves)
	// Output:
	// [[-0.1 -0.2] [-0.3 -0.4]]
}

// Example_subRange crops the middle of a sample.
func Example_subRange() {
	s := audio.NewWaveForm(4, []float32{0, 1, 2, 3, 4, 5, 6, 7})

	crop, _ := audio.SubRangeByTime(s, 0.5, 1.5)
	w, _ := crop.Waveform(0)
	fmt.Println(w)
	// Output:
	// [2 3 4 5]
}

// mockDecoder is a simple decoder for testing the registry.
type mockDecoder struct{}

func (m mockDecoder) Decode(r io.Reader) (*audio.MultiChannel, error) {
	return audio.FromWaveforms(16000, [][]float32{audiotest.Sine(16000, 1000, 440, 1)})
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mock", mockDecoder{})

	decoder, ok := registry.Get("mock")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}

	fmt.Printf("Retrieved decoder: %T\n", decoder)

	_, ok = registry.Get("unknown")
	if !ok {
		fmt.Println("Unknown format not found in registry")
	}
	// Output:
	// Retrieved decoder: audio_test.mockDecoder
	// Unknown format not found in registry
}
