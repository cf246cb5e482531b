// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample model and mixing engine.
//
// This package contains the core building blocks:
//   - Sample interface over channels of float32 waveform data
//   - SineWave and WaveForm mono sources
//   - MultiChannel for assembling mono samples into multi-channel sound
//   - Composition for mixing tracks on a timeline
//   - Effect and WaveformEffect, with Lift, Scale, Downmix and LinearFadeEcho
//   - Format registry for decoder registration
//
// # Sample Interface
//
// The Sample interface is the foundation of the model:
//
//	type Sample interface {
//	    SampleRate() int
//	    Length() int
//	    Channels() int
//	    Waveform(channel int) ([]float32, bool)
//	    Duplicate() Sample
//	}
//
// Waveform always returns a fresh copy, so callers may modify it freely.
// Duplicate returns a deep copy; containers store duplicates of what they
// are given.
//
// # Combining Samples
//
// Two mono samples become a stereo sample with NewDual:
//
//	tone := audio.NewSineWave(440, 44100, 0.5)
//	silence := audio.NewSineWave(440, 44100, 0)
//	left, err := audio.NewDual(tone, silence)
//
// A Composition schedules tracks at sample offsets and sums them. A track is
// stored once and can be rescheduled by id:
//
//	comp := audio.NewComposition()
//	id, _ := comp.AddTrack(left, 0)
//	comp.AddTrackIDSec(id, 2.0)
//
// All shape checks (sample rate, channel count, length) happen when a
// sample is added, so Waveform on a valid container never fails.
//
// # Effects
//
// A WaveformEffect works on one channel buffer; Lift applies it to every
// channel of a sample:
//
//	quieter, err := audio.Lift(audio.Gain(0.5)).Apply(left)
//
// LinearFadeEcho builds a Composition of delayed, fading copies:
//
//	echo, _ := audio.NewLinearFadeEcho(11025, 0.2)
//	wet, err := echo.Apply(left)
//
// # Sample Format
//
// Audio samples are represented as float32, nominally in [-1.0, 1.0].
// Mixing does not clip, so sums may exceed that range.
//
// # Error Handling
//
// Failures wrap the sentinel errors in this package and can be matched with
// errors.Is:
//
//	if _, err := comp.AddTrack(mono, 0); errors.Is(err, audio.ErrShapeMismatch) {
//	    // channel count or sample rate differs
//	}
package audio
