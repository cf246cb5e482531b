// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MultiChannel assembles mono samples into one multi-channel sample.
// Channel order is append order.
type MultiChannel struct {
	sampleRate int
	length     int
	channels   []Sample
}

// NewMultiChannel returns an empty sample; rate and length are set by the
// first AddChannel.
func NewMultiChannel() *MultiChannel {
	return &MultiChannel{}
}

// NewDual builds a stereo sample from two mono samples.
func NewDual(left, right Sample) (*MultiChannel, error) {
	if left.Length() != right.Length() {
		return nil, fmt.Errorf("%w: left and right lengths do not match (%d != %d)",
			ErrShapeMismatch, left.Length(), right.Length())
	}
	if left.SampleRate() != right.SampleRate() {
		return nil, fmt.Errorf("%w: left and right sample rates do not match (%d != %d)",
			ErrShapeMismatch, left.SampleRate(), right.SampleRate())
	}

	m := NewMultiChannel()
	if err := m.AddChannel(left); err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	if err := m.AddChannel(right); err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	return m, nil
}

// FromWaveforms builds a sample with one WaveForm channel per buffer.
func FromWaveforms(sampleRate int, waveforms [][]float32) (*MultiChannel, error) {
	m := NewMultiChannel()
	for c, w := range waveforms {
		if err := m.AddChannel(NewWaveForm(sampleRate, w)); err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}
	}
	return m, nil
}

// AddChannel appends a duplicate of s as the next channel.
func (m *MultiChannel) AddChannel(s Sample) error {
	if s.Channels() != 1 {
		return fmt.Errorf("%w: can only add single channel samples, got %d channels",
			ErrShapeMismatch, s.Channels())
	}

	if len(m.channels) == 0 {
		m.sampleRate = s.SampleRate()
		m.length = s.Length()
	} else {
		if s.SampleRate() != m.sampleRate {
			return fmt.Errorf("%w: channel sample rate %d, want %d",
				ErrShapeMismatch, s.SampleRate(), m.sampleRate)
		}
		if s.Length() != m.length {
			return fmt.Errorf("%w: channel length %d, want %d",
				ErrShapeMismatch, s.Length(), m.length)
		}
	}

	m.channels = append(m.channels, s.Duplicate())
	return nil
}

func (m *MultiChannel) SampleRate() int { return m.sampleRate }
func (m *MultiChannel) Length() int     { return m.length }
func (m *MultiChannel) Channels() int   { return len(m.channels) }

func (m *MultiChannel) Waveform(channel int) ([]float32, bool) {
	if channel < 0 || channel >= len(m.channels) {
		return nil, false
	}
	return m.channels[channel].Waveform(0)
}

func (m *MultiChannel) Duplicate() Sample {
	dup := &MultiChannel{
		sampleRate: m.sampleRate,
		length:     m.length,
		channels:   make([]Sample, len(m.channels)),
	}
	for i, ch := range m.channels {
		dup.channels[i] = ch.Duplicate()
	}
	return dup
}
