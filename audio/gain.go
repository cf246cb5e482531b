// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/viterin/vek/vek32"

// Gain multiplies every value of a channel by a constant.
type Gain float32

func (g Gain) Process(waveform []float32, sampleRate int) (Sample, error) {
	return &WaveForm{sampleRate: sampleRate, data: vek32.MulNumber(waveform, float32(g))}, nil
}

// Scale returns a same-shape copy of s with every value multiplied by gain.
// Channels that s cannot produce fail with ErrInvalidChannel, and a sample
// without channels fails with ErrShapeMismatch.
func Scale(s Sample, gain float32) (Sample, error) {
	return Lift(Gain(gain)).Apply(s)
}
