// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/viterin/vek/vek32"
)

// Downmix is an Effect that averages all channels into one mono WaveForm.
// Mono input passes through as a copy.
type Downmix struct{}

func (Downmix) Apply(s Sample) (Sample, error) {
	channels := s.Channels()
	if channels == 0 {
		return nil, fmt.Errorf("%w: nothing to downmix", ErrShapeMismatch)
	}

	sum, ok := s.Waveform(0)
	if !ok {
		return nil, missingChannel(0)
	}
	if channels == 1 {
		return &WaveForm{sampleRate: s.SampleRate(), data: sum}, nil
	}

	for c := 1; c < channels; c++ {
		w, ok := s.Waveform(c)
		if !ok {
			return nil, missingChannel(c)
		}
		vek32.Add_Inplace(sum, w)
	}
	vek32.MulNumber_Inplace(sum, 1/float32(channels))

	return &WaveForm{sampleRate: s.SampleRate(), data: sum}, nil
}
