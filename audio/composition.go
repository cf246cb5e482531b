// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/viterin/vek/vek32"
)

// TrackID identifies a track registered in a Composition.
type TrackID int

// Composition mixes tracks on a timeline. Each track is stored once and can
// be scheduled at any number of start offsets; the output is the sum of all
// scheduled copies, with silence where nothing plays.
type Composition struct {
	sampleRate int
	length     int
	channels   int
	tracks     []Sample
	starts     [][]int
}

func NewComposition() *Composition {
	return &Composition{}
}

// AddTrack registers a duplicate of track and schedules it at start.
// The first track fixes the sample rate and channel count.
func (c *Composition) AddTrack(track Sample, start int) (TrackID, error) {
	if err := checkStart(start, track.Length()); err != nil {
		return 0, err
	}

	if len(c.tracks) == 0 {
		c.sampleRate = track.SampleRate()
		c.channels = track.Channels()
	} else {
		if track.SampleRate() != c.sampleRate {
			return 0, fmt.Errorf("%w: track sample rate %d, want %d",
				ErrShapeMismatch, track.SampleRate(), c.sampleRate)
		}
		if track.Channels() != c.channels {
			return 0, fmt.Errorf("%w: track has %d channels, want %d",
				ErrShapeMismatch, track.Channels(), c.channels)
		}
	}

	id := TrackID(len(c.tracks))
	c.tracks = append(c.tracks, track.Duplicate())
	c.starts = append(c.starts, []int{start})
	c.extend(start + track.Length())

	return id, nil
}

// AddTrackSec is AddTrack with the start given in seconds. An empty
// composition converts with the track's own sample rate.
func (c *Composition) AddTrackSec(track Sample, start float64) (TrackID, error) {
	rate := c.sampleRate
	if len(c.tracks) == 0 {
		rate = track.SampleRate()
	}
	return c.AddTrack(track, secondsToIndex(start, rate))
}

// AddTrackID schedules an already registered track at another start offset
// without storing another copy of it.
func (c *Composition) AddTrackID(id TrackID, start int) error {
	if id < 0 || int(id) >= len(c.tracks) {
		return fmt.Errorf("%w: id %d", ErrUnknownTrack, id)
	}
	if err := checkStart(start, c.tracks[id].Length()); err != nil {
		return err
	}

	c.starts[id] = append(c.starts[id], start)
	c.extend(start + c.tracks[id].Length())

	return nil
}

func (c *Composition) AddTrackIDSec(id TrackID, start float64) error {
	return c.AddTrackID(id, secondsToIndex(start, c.sampleRate))
}

// checkStart rejects offsets that are negative or would overflow the end
// index of a track of the given length.
func checkStart(start, length int) error {
	if start < 0 {
		return fmt.Errorf("%w: negative start %d", ErrOutOfRange, start)
	}
	if start > math.MaxInt-length {
		return fmt.Errorf("%w: start %d overflows track end", ErrOutOfRange, start)
	}
	return nil
}

func (c *Composition) extend(end int) {
	if end > c.length {
		c.length = end
	}
}

// Tracks is the number of registered tracks.
func (c *Composition) Tracks() int { return len(c.tracks) }

// Starts returns a copy of the schedule of id, or nil for unknown ids.
func (c *Composition) Starts(id TrackID) []int {
	if id < 0 || int(id) >= len(c.starts) {
		return nil
	}
	return append([]int(nil), c.starts[id]...)
}

func (c *Composition) SampleRate() int { return c.sampleRate }
func (c *Composition) Length() int     { return c.length }
func (c *Composition) Channels() int   { return c.channels }

// Waveform sums every scheduled copy of every track for channel.
// The result is recomputed on each call.
func (c *Composition) Waveform(channel int) ([]float32, bool) {
	if channel < 0 || channel >= c.channels {
		return nil, false
	}

	out := make([]float32, c.length)
	for id, track := range c.tracks {
		w, ok := track.Waveform(channel)
		if !ok || len(w) == 0 {
			continue
		}
		for _, start := range c.starts[id] {
			vek32.Add_Inplace(out[start:start+len(w)], w)
		}
	}
	return out, true
}

func (c *Composition) Duplicate() Sample {
	dup := &Composition{
		sampleRate: c.sampleRate,
		length:     c.length,
		channels:   c.channels,
		tracks:     make([]Sample, len(c.tracks)),
		starts:     make([][]int, len(c.starts)),
	}
	for i, t := range c.tracks {
		dup.tracks[i] = t.Duplicate()
	}
	for i, s := range c.starts {
		dup.starts[i] = append([]int(nil), s...)
	}
	return dup
}

func secondsToIndex(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}
