// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrInvalidStream indicates the input is not an Ogg Vorbis stream.
var ErrInvalidStream = errors.New("invalid Ogg Vorbis stream")
