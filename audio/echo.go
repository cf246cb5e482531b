// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// fadeEpsilon absorbs rounding in 1 - n*slope so that slopes which divide 1
// evenly stop exactly at zero.
const fadeEpsilon = 1e-6

// LinearFadeEcho layers copies of the input, each delayed by a further
// Delay samples and quieter by FadeSlope, until the gain reaches zero.
// The dry signal is only included when Dry is set.
type LinearFadeEcho struct {
	Delay     int
	FadeSlope float64
	Dry       bool
}

func NewLinearFadeEcho(delay int, fadeSlope float64) (*LinearFadeEcho, error) {
	e := &LinearFadeEcho{Delay: delay, FadeSlope: fadeSlope}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *LinearFadeEcho) Validate() error {
	if e.Delay < 0 {
		return fmt.Errorf("%w: echo delay %d must not be negative", ErrInvalidParameter, e.Delay)
	}
	if e.FadeSlope <= 0 || e.FadeSlope > 1 {
		return fmt.Errorf("%w: echo fade slope %v must be in (0, 1]", ErrInvalidParameter, e.FadeSlope)
	}
	return nil
}

// Echoes is the number of delayed copies Apply schedules.
func (e *LinearFadeEcho) Echoes() int {
	n := 0
	for 1-float64(n+1)*e.FadeSlope > fadeEpsilon {
		n++
	}
	return n
}

func (e *LinearFadeEcho) Apply(s Sample) (Sample, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if s.Channels() == 0 {
		return nil, fmt.Errorf("%w: nothing to echo", ErrShapeMismatch)
	}

	comp := NewComposition()
	if e.Dry {
		if _, err := comp.AddTrack(s, 0); err != nil {
			return nil, err
		}
	}

	for n := 1; n <= e.Echoes(); n++ {
		fade := 1 - float64(n)*e.FadeSlope

		scaled, err := Scale(s, float32(fade))
		if err != nil {
			return nil, fmt.Errorf("echo %d: %w", n, err)
		}
		if _, err := comp.AddTrack(scaled, n*e.Delay); err != nil {
			return nil, fmt.Errorf("echo %d: %w", n, err)
		}
	}

	return comp, nil
}
