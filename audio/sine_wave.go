// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// SineWave synthesizes a mono sinusoid on every Waveform call.
type SineWave struct {
	frequency  float64
	amplitude  float32
	sampleRate int
	length     int
}

// NewSineWave creates a sine of length samples at DefaultSampleRate.
func NewSineWave(frequency float64, length int, amplitude float32) *SineWave {
	return NewSineWaveAt(DefaultSampleRate, frequency, length, amplitude)
}

// NewSineWaveAt creates a sine at sampleRate. A non-positive rate falls back
// to DefaultSampleRate and a negative length to zero.
func NewSineWaveAt(sampleRate int, frequency float64, length int, amplitude float32) *SineWave {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &SineWave{
		frequency:  frequency,
		amplitude:  amplitude,
		sampleRate: sampleRate,
		length:     max(length, 0),
	}
}

func (s *SineWave) SampleRate() int    { return s.sampleRate }
func (s *SineWave) Length() int        { return s.length }
func (s *SineWave) Channels() int      { return 1 }
func (s *SineWave) Frequency() float64 { return s.frequency }
func (s *SineWave) Amplitude() float32 { return s.amplitude }

func (s *SineWave) Waveform(channel int) ([]float32, bool) {
	if channel != 0 {
		return nil, false
	}

	w := make([]float32, s.length)
	step := 2 * math.Pi * s.frequency / float64(s.sampleRate)
	amp := float64(s.amplitude)
	for t := range w {
		w[t] = float32(amp * math.Sin(step*float64(t)))
	}
	return w, true
}

func (s *SineWave) Duplicate() Sample {
	dup := *s
	return &dup
}
