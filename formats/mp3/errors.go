// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrNoFrames      = errors.New("MP3 stream holds no frames")
	ErrInvalidStream = errors.New("invalid MP3 stream")
)
