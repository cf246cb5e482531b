// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch reports a sample rate, channel count or length that
	// disagrees with the container it is combined into.
	ErrShapeMismatch = errors.New("sample shape mismatch")

	// ErrInvalidChannel reports a channel index the sample does not hold.
	ErrInvalidChannel = errors.New("sample is missing a channel")

	// ErrUnknownTrack reports a track id that was never registered.
	ErrUnknownTrack = errors.New("track does not exist")

	// ErrExternalIO wraps failures of files and codecs.
	ErrExternalIO = errors.New("external audio I/O failed")

	// ErrFormatDrift reports a decoded stream changing sample rate or
	// channel count mid-stream.
	ErrFormatDrift = errors.New("stream format changed mid-stream")

	ErrOutOfRange        = errors.New("index out of range")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

func missingChannel(channel int) error {
	return fmt.Errorf("%w: channel %d", ErrInvalidChannel, channel)
}
