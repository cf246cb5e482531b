// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
)

var defaultRegistry = sync.OnceValue(func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
})

// DefaultRegistry returns the process-wide registry used by Open. It knows
// wav, mp3, ogg, aif and aiff; further decoders may be registered on it.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry()
}

// Export writes every channel of s to path as a 32-bit IEEE float WAV file.
// All waveforms are collected before the file is created, so a sample with
// a missing channel leaves no file behind.
func Export(s audio.Sample, path string) error {
	waves, err := audio.Waveforms(s)
	if err != nil {
		return err
	}
	if len(waves) == 0 {
		return fmt.Errorf("%w: cannot export a sample without channels", audio.ErrShapeMismatch)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
	}

	if err := wav.EncodeWaveforms(f, s.SampleRate(), waves); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
	}
	return nil
}

// Open decodes the file at path with the DefaultRegistry decoder matching
// its extension.
func Open(path string) (*audio.MultiChannel, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")

	dec, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrExternalIO, err)
	}
	defer f.Close()

	s, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return s, nil
}
