// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmix/audio"
)

const (
	// go-mp3 always decodes to 16-bit little-endian stereo.
	outputChannels = 2
	bytesPerValue  = 2
	// samplesPerFrame is the MPEG-1 Layer III granule pair size.
	samplesPerFrame = 1152
	frameBytes      = samplesPerFrame * outputChannels * bytesPerValue
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// frameReader slices the go-mp3 PCM stream into stereo frames.
type frameReader struct {
	dec mp3Reader
	buf []byte
}

func newFrameReader(dec mp3Reader) *frameReader {
	return &frameReader{
		dec: dec,
		buf: make([]byte, frameBytes),
	}
}

func (f *frameReader) NextFrame() (Frame, error) {
	n, err := io.ReadFull(f.dec, f.buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Frame{}, err
	}

	// Drop a trailing partial stereo value.
	n -= n % (outputChannels * bytesPerValue)
	if n == 0 {
		return Frame{}, io.EOF
	}

	data := make([]int16, n/bytesPerValue)
	for i := range data {
		data[i] = int16(binary.LittleEndian.Uint16(f.buf[2*i:]))
	}

	return Frame{
		Data:       data,
		SampleRate: f.dec.SampleRate(),
		Channels:   outputChannels,
	}, nil
}

// Decoder reads a whole MP3 stream into memory. Mono streams decode to two
// identical channels.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.MultiChannel, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
	}

	return Accumulate(newFrameReader(dec))
}
