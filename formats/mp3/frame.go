// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// Frame is one block of decoded PCM. Data is interleaved by channel.
type Frame struct {
	Data       []int16
	SampleRate int
	Channels   int
}

// FrameDecoder yields decoded frames in stream order and io.EOF once the
// stream is exhausted.
type FrameDecoder interface {
	NextFrame() (Frame, error)
}

// Accumulate drains fd into one buffer per channel. The first frame fixes
// the sample rate and channel count; a later frame that changes either
// fails with audio.ErrFormatDrift.
func Accumulate(fd FrameDecoder) (*audio.MultiChannel, error) {
	var (
		waves      [][]float32
		sampleRate int
		frames     int
	)

	for {
		frame, err := fd.NextFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d: %w", audio.ErrExternalIO, frames, err)
		}

		if frame.Channels < 1 {
			return nil, fmt.Errorf("%w: frame %d has %d channels",
				audio.ErrInvalidParameter, frames, frame.Channels)
		}
		if len(frame.Data)%frame.Channels != 0 {
			return nil, fmt.Errorf("%w: frame %d holds %d values for %d channels",
				audio.ErrShapeMismatch, frames, len(frame.Data), frame.Channels)
		}

		if waves == nil {
			sampleRate = frame.SampleRate
			waves = make([][]float32, frame.Channels)
		}
		if frame.SampleRate != sampleRate {
			return nil, fmt.Errorf("%w: sample rate changed from %d to %d at frame %d",
				audio.ErrFormatDrift, sampleRate, frame.SampleRate, frames)
		}
		if frame.Channels != len(waves) {
			return nil, fmt.Errorf("%w: channel count changed from %d to %d at frame %d",
				audio.ErrFormatDrift, len(waves), frame.Channels, frames)
		}

		for i, v := range frame.Data {
			c := i % frame.Channels
			waves[c] = append(waves[c], utils.Int16ToFloat32(v))
		}
		frames++
	}

	if frames == 0 {
		return nil, ErrNoFrames
	}

	return audio.FromWaveforms(sampleRate, waves)
}
