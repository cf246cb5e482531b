// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Effect transforms a whole sample into a new one. It must not modify its
// input.
type Effect interface {
	Apply(s Sample) (Sample, error)
}

// WaveformEffect transforms a single channel buffer. It must not modify the
// buffer or keep a reference to it. Use Lift to apply it to every channel of
// a sample.
type WaveformEffect interface {
	Process(waveform []float32, sampleRate int) (Sample, error)
}

// EffectFunc adapts a plain function to Effect.
type EffectFunc func(s Sample) (Sample, error)

func (f EffectFunc) Apply(s Sample) (Sample, error) { return f(s) }

// WaveformEffectFunc adapts a plain function to WaveformEffect.
type WaveformEffectFunc func(waveform []float32, sampleRate int) (Sample, error)

func (f WaveformEffectFunc) Process(waveform []float32, sampleRate int) (Sample, error) {
	return f(waveform, sampleRate)
}

// Lift turns a WaveformEffect into an Effect by processing each channel
// independently and reassembling the results in channel order. Samples
// without channels fail with ErrShapeMismatch.
func Lift(e WaveformEffect) Effect {
	return lifted{e: e}
}

type lifted struct {
	e WaveformEffect
}

func (l lifted) Apply(s Sample) (Sample, error) {
	if s.Channels() == 0 {
		return nil, fmt.Errorf("%w: nothing to process", ErrShapeMismatch)
	}

	out := NewMultiChannel()
	for c := range s.Channels() {
		w, ok := s.Waveform(c)
		if !ok {
			return nil, missingChannel(c)
		}

		processed, err := l.e.Process(w, s.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}

		if err := out.AddChannel(processed); err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}
	}
	return out, nil
}

// Chain applies effects in order, feeding each result to the next.
func Chain(effects ...Effect) Effect {
	return EffectFunc(func(s Sample) (Sample, error) {
		for i, e := range effects {
			next, err := e.Apply(s)
			if err != nil {
				return nil, fmt.Errorf("effect %d: %w", i, err)
			}
			s = next
		}
		return s, nil
	})
}
