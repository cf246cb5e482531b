// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SubRange crops every channel of s to the half-open interval [start, end).
func SubRange(s Sample, start, end int) (*MultiChannel, error) {
	if start < 0 || end > s.Length() || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrOutOfRange, start, end, s.Length())
	}

	waves, err := Waveforms(s)
	if err != nil {
		return nil, err
	}
	for c := range waves {
		waves[c] = waves[c][start:end]
	}

	return FromWaveforms(s.SampleRate(), waves)
}

// SubRangeByTime is SubRange with bounds in seconds, rounded to the nearest
// sample index.
func SubRangeByTime(s Sample, start, end float64) (*MultiChannel, error) {
	rate := s.SampleRate()
	return SubRange(s, secondsToIndex(start, rate), secondsToIndex(end, rate))
}
