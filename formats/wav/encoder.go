// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// framesPerChunk bounds how many frames are handed to the encoder at once.
const framesPerChunk = 4096

// Encode writes s as an interleaved 32-bit IEEE float WAV file. The writer
// must be seekable so the header sizes can be patched on close; the writer
// itself is not closed.
func Encode(w io.WriteSeeker, s audio.Sample) error {
	waves, err := audio.Waveforms(s)
	if err != nil {
		return err
	}
	return EncodeWaveforms(w, s.SampleRate(), waves)
}

// EncodeWaveforms is Encode for channel buffers that were already
// collected. Every buffer must have the same length.
func EncodeWaveforms(w io.WriteSeeker, sampleRate int, waves [][]float32) error {
	channels := len(waves)
	if channels == 0 {
		return fmt.Errorf("%w: cannot encode a sample without channels", audio.ErrShapeMismatch)
	}

	length := len(waves[0])
	for c, wave := range waves {
		if len(wave) != length {
			return fmt.Errorf("%w: channel %d holds %d values, want %d",
				audio.ErrShapeMismatch, c, len(wave), length)
		}
	}

	enc := gowav.NewEncoder(w, sampleRate, audio.ExportBitDepth, channels, FormatIEEEFloat)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 0, framesPerChunk*channels),
		SourceBitDepth: audio.ExportBitDepth,
	}

	// Write runs at least once so the data chunk exists even when empty.
	for start := 0; start == 0 || start < length; start += framesPerChunk {
		end := min(start+framesPerChunk, length)

		buf.Data = buf.Data[:0]
		for i := start; i < end; i++ {
			for c := range channels {
				buf.Data = append(buf.Data, utils.Float32ToBits(waves[c][i]))
			}
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
	}

	return nil
}
