// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// WAVE format tags understood by the decoder.
const (
	FormatPCM       = 1
	FormatIEEEFloat = 3
)

// Decoder reads a whole WAV file into memory.
type Decoder struct{}

// Decode parses r and returns one WaveForm channel per WAV channel.
// Readers that cannot seek are buffered first.
func (Decoder) Decode(r io.Reader) (*audio.MultiChannel, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans < 1 {
		return nil, fmt.Errorf("%w: no channels in format chunk", ErrNotWavFile)
	}

	convert, err := sampleConverter(int(dec.WavAudioFormat), int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}

	return deinterleave(buf, int(dec.NumChans), int(dec.SampleRate), convert)
}

func sampleConverter(format, bitDepth int) (func(int) float32, error) {
	switch format {
	case FormatPCM:
		switch bitDepth {
		case 8, 16, 24, 32:
			return func(v int) float32 { return utils.IntToFloat32(v, bitDepth) }, nil
		}
	case FormatIEEEFloat:
		if bitDepth == audio.ExportBitDepth {
			return utils.BitsToFloat32, nil
		}
	}

	return nil, fmt.Errorf("%w: %w: format %d with %d bits",
		ErrUnsupportedEncoding, audio.ErrUnsupportedFormat, format, bitDepth)
}

// deinterleave splits frames round-robin; a trailing partial frame is dropped.
func deinterleave(buf *goaudio.IntBuffer, channels, sampleRate int, convert func(int) float32) (*audio.MultiChannel, error) {
	frames := len(buf.Data) / channels

	waves := make([][]float32, channels)
	for c := range waves {
		waves[c] = make([]float32, frames)
	}

	for i := range frames {
		base := i * channels
		for c := range channels {
			waves[c][i] = convert(buf.Data[base+c])
		}
	}

	return audio.FromWaveforms(sampleRate, waves)
}
