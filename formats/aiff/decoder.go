// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
)

// readBufferSize is the number of interleaved values requested per read.
const readBufferSize = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.MultiChannel, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading aiff data: %w", audio.ErrExternalIO, err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return readAll(dec, int(dec.BitDepth))
}

// fullScale returns the magnitude that maps onto 1.0. AIFF PCM is signed at
// every depth.
func fullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 128.0, nil
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	}
	return 0, fmt.Errorf("%w: %w: %d bits", ErrUnsupportedBitDepth, audio.ErrUnsupportedFormat, bitDepth)
}

// readAll drains dec and splits its interleaved output per channel. A
// trailing partial frame is dropped.
func readAll(dec aiffReader, bitDepth int) (*audio.MultiChannel, error) {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}
	channels := format.NumChannels

	buf := &goaudio.IntBuffer{
		Data:   make([]int, readBufferSize),
		Format: format,
	}

	var values []int
	for {
		n, err := dec.PCMBuffer(buf)
		values = append(values, buf.Data[:n]...)

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
		}
		if n == 0 || err != nil {
			break
		}
	}

	frames := len(values) / channels
	waves := make([][]float32, channels)
	for c := range waves {
		waves[c] = make([]float32, frames)
	}
	for i := range frames {
		for c := range channels {
			waves[c][i] = float32(values[i*channels+c]) / scale
		}
	}

	return audio.FromWaveforms(format.SampleRate, waves)
}
