// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/mp3"
)

// frames replays decoded frames, standing in for a real frame decoder.
type frames []mp3.Frame

func (f *frames) NextFrame() (mp3.Frame, error) {
	if len(*f) == 0 {
		return mp3.Frame{}, io.EOF
	}
	next := (*f)[0]
	*f = (*f)[1:]
	return next, nil
}

// ExampleAccumulate collects decoded frames into a stereo sample.
func ExampleAccumulate() {
	fd := &frames{
		{Data: []int16{16384, -16384, 8192, -8192}, SampleRate: 44100, Channels: 2},
		{Data: []int16{0, 0}, SampleRate: 44100, Channels: 2},
	}

	sample, err := mp3.Accumulate(fd)
	if err != nil {
		fmt.Println(err)
		return
	}

	left, _ := sample.Waveform(0)
	fmt.Printf("%d Hz, %d channels, %d frames\n",
		sample.SampleRate(), sample.Channels(), sample.Length())
	fmt.Println(left)
	// Output:
	// 44100 Hz, 2 channels, 3 frames
	// [0.5 0.25 0]
}

// ExampleAccumulate_drift shows the error for a stream whose sample rate
// changes.
func ExampleAccumulate_drift() {
	fd := &frames{
		{Data: []int16{1, 2}, SampleRate: 44100, Channels: 2},
		{Data: []int16{1, 2}, SampleRate: 22050, Channels: 2},
	}

	_, err := mp3.Accumulate(fd)
	fmt.Println(errors.Is(err, audio.ErrFormatDrift))
	// Output:
	// true
}

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sample, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded MP3: %d Hz, %d channels, %d frames\n",
		sample.SampleRate(), sample.Channels(), sample.Length())
}
