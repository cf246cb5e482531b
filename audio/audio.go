// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

const (
	// DefaultSampleRate is used by synthesized samples when no rate is given.
	DefaultSampleRate = 44100
	// ExportBitDepth is the bit depth of exported (IEEE float) audio.
	ExportBitDepth = 32
)

// Sample is a time-indexed, multi-channel float32 signal.
type Sample interface {
	// SampleRate in Hz.
	SampleRate() int
	// Length is the number of time steps per channel.
	Length() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Waveform returns a fresh copy of the channel data, or false when the
	// channel does not exist. Defined waveforms always hold Length() values.
	Waveform(channel int) ([]float32, bool)
	// Duplicate returns a deep copy that shares no buffers with the receiver.
	Duplicate() Sample
}

// Decoder materializes a Sample from an encoded input.
type Decoder interface {
	Decode(r io.Reader) (*MultiChannel, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register stores d under format. Keys are case-insensitive.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Formats lists the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	return formats
}

// Waveforms collects every channel of s. It fails with ErrInvalidChannel
// when s reports a channel it cannot produce.
func Waveforms(s Sample) ([][]float32, error) {
	waves := make([][]float32, s.Channels())
	for c := range waves {
		w, ok := s.Waveform(c)
		if !ok {
			return nil, missingChannel(c)
		}
		waves[c] = w
	}
	return waves, nil
}
