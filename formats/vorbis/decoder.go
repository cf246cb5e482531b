// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmix/audio"
)

// readBufferSize is the number of interleaved values requested per read.
const readBufferSize = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved values and returns how many it wrote.
	Read(p []float32) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.MultiChannel, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
	}

	return readAll(dec)
}

// readAll drains dec and splits its interleaved output per channel.
func readAll(dec oggReader) (*audio.MultiChannel, error) {
	channels := dec.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidStream, channels)
	}

	waves := make([][]float32, channels)
	frames := max(readBufferSize/channels, 1)
	buf := make([]float32, frames*channels)

	for {
		n, err := dec.Read(buf)
		n -= n % channels
		for i, v := range buf[:n] {
			waves[i%channels] = append(waves[i%channels], v)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
		}
	}

	return audio.FromWaveforms(dec.SampleRate(), waves)
}
