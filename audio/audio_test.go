// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (*MultiChannel, error) {
	return FromWaveforms(44100, [][]float32{make([]float32, 100), make([]float32, 100)})
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (*MultiChannel, error) {
	return nil, errors.New("decode failed")
}

// brokenSample claims more channels than it can produce.
type brokenSample struct {
	channels int
	length   int
}

func (b brokenSample) SampleRate() int { return 8000 }
func (b brokenSample) Length() int     { return b.length }
func (b brokenSample) Channels() int   { return b.channels }
func (b brokenSample) Duplicate() Sample {
	return b
}

func (b brokenSample) Waveform(channel int) ([]float32, bool) {
	if channel == 0 {
		return make([]float32, b.length), true
	}
	return nil, false
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	require.True(t, ok, "Registry.Get() failed to retrieve registered decoder")
	assert.Same(t, decoder, got)
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("WAV", decoder)

	got, ok := registry.Get("wav")
	require.True(t, ok)
	assert.Same(t, decoder, got)
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	oggDecoder := &mockDecoder{name: "ogg"}
	badDecoder := &failingDecoder{}

	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)
	registry.Register("ogg", oggDecoder)
	registry.Register("bad", badDecoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"ogg", oggDecoder, true},
		{"bad", badDecoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	assert.ElementsMatch(t, []string{"wav", "mp3", "ogg", "bad"}, registry.Formats())
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register("wav", decoder1)
	registry.Register("wav", decoder2)

	got, ok := registry.Get("wav")
	require.True(t, ok, "Registry.Get() failed after overwrite")
	assert.Same(t, decoder2, got)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
	}
	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}
	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	require.True(t, ok)
	assert.Same(t, decoder, got)
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	require.NotNil(t, registry)
	assert.NotNil(t, registry.codecs)
	assert.NotNil(t, registry.mtx)
}

func TestWaveforms(t *testing.T) {
	t.Parallel()

	m, err := FromWaveforms(8000, [][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	waves, err := Waveforms(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2, 3}, {4, 5, 6}}, waves)
}

func TestWaveforms_MissingChannel(t *testing.T) {
	t.Parallel()

	_, err := Waveforms(brokenSample{channels: 2, length: 4})
	assert.ErrorIs(t, err, ErrInvalidChannel)
}

// BenchmarkRegistry_Get benchmarks retrieving decoders
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
