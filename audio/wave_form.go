// SPDX-License-Identifier: EPL-2.0

package audio

// WaveForm holds one materialized mono buffer.
type WaveForm struct {
	sampleRate int
	data       []float32
}

// NewWaveForm copies data into a new mono sample.
func NewWaveForm(sampleRate int, data []float32) *WaveForm {
	return &WaveForm{
		sampleRate: sampleRate,
		data:       append([]float32(nil), data...),
	}
}

func (w *WaveForm) SampleRate() int { return w.sampleRate }
func (w *WaveForm) Length() int     { return len(w.data) }
func (w *WaveForm) Channels() int   { return 1 }

func (w *WaveForm) Waveform(channel int) ([]float32, bool) {
	if channel != 0 {
		return nil, false
	}
	return append(make([]float32, 0, len(w.data)), w.data...), true
}

func (w *WaveForm) Duplicate() Sample {
	return NewWaveForm(w.sampleRate, w.data)
}
