// SPDX-License-Identifier: EPL-2.0

package project

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/audio"
)

// builder resolves sources once each, in dependency order.
type builder struct {
	p       *Project
	log     zerolog.Logger
	samples map[string]audio.Sample
}

// Build renders p into a single sample: every track is scheduled on a
// Composition and the effect chain is applied to the result in order.
// The project must have been validated.
func Build(p *Project, log zerolog.Logger) (audio.Sample, error) {
	b := &builder{
		p:       p,
		log:     log,
		samples: make(map[string]audio.Sample, len(p.Sources)),
	}

	comp := audio.NewComposition()
	for i, t := range p.Tracks {
		s, err := b.source(t.Source)
		if err != nil {
			return nil, err
		}

		id, err := comp.AddTrackSec(s, t.At[0])
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		for _, at := range t.At[1:] {
			if err := comp.AddTrackIDSec(id, at); err != nil {
				return nil, fmt.Errorf("track %d: %w", i, err)
			}
		}

		log.Debug().
			Int("track", i).
			Str("source", t.Source).
			Floats64("at", t.At).
			Ints("starts", comp.Starts(id)).
			Msg("Scheduled track")
	}

	effects := make([]audio.Effect, 0, len(p.Effects))
	for i, e := range p.Effects {
		effect, err := newEffect(e, comp.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		effects = append(effects, effect)
		log.Debug().Int("effect", i).Str("kind", e.Kind).Msg("Added effect")
	}

	out, err := audio.Chain(effects...).Apply(comp)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("channels", out.Channels()).
		Int("sample_rate", out.SampleRate()).
		Int("length", out.Length()).
		Msg("Project built")

	return out, nil
}

// Render builds p and exports the result to its output path.
func Render(p *Project, log zerolog.Logger) error {
	if p.Output == "" {
		return fmt.Errorf("%w: output cannot be empty", ErrInvalidProject)
	}

	out, err := Build(p, log)
	if err != nil {
		return err
	}

	path := p.OutputPath()
	if err := audmix.Export(out, path); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}

	log.Info().Str("output", path).Int("frames", out.Length()).Msg("Rendered project")
	return nil
}

func (b *builder) source(name string) (audio.Sample, error) {
	if s, ok := b.samples[name]; ok {
		return s, nil
	}

	src, ok := b.p.Sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownSource, name)
	}

	s, err := b.load(src)
	if err != nil {
		return nil, fmt.Errorf("source '%s': %w", name, err)
	}

	if src.Start > 0 || src.End > 0 {
		end := src.End
		if end == 0 {
			end = float64(s.Length()) / float64(s.SampleRate())
		}
		if s, err = audio.SubRangeByTime(s, src.Start, end); err != nil {
			return nil, fmt.Errorf("source '%s': %w", name, err)
		}
	}

	b.log.Debug().
		Str("source", name).
		Str("kind", src.Kind).
		Int("channels", s.Channels()).
		Int("sample_rate", s.SampleRate()).
		Int("length", s.Length()).
		Msg("Resolved source")

	b.samples[name] = s
	return s, nil
}

func (b *builder) load(src *Source) (audio.Sample, error) {
	switch src.Kind {
	case KindSine:
		rate := b.p.SampleRate
		length := int(math.Round(src.Seconds * float64(rate)))
		return audio.NewSineWaveAt(rate, src.Frequency, length, float32(src.Amplitude)), nil

	case KindFile:
		s, err := audmix.Open(b.p.resolve(src.Path))
		if err != nil {
			return nil, err
		}
		if src.Downmix {
			return audio.Downmix{}.Apply(s)
		}
		return s, nil

	case KindDual:
		mono, err := b.source(src.Of)
		if err != nil {
			return nil, err
		}
		silence := audio.NewWaveForm(mono.SampleRate(), make([]float32, mono.Length()))
		if src.Side == SideLeft {
			return audio.NewDual(mono, silence)
		}
		return audio.NewDual(silence, mono)
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidProject, src.Kind)
}

func newEffect(e Effect, sampleRate int) (audio.Effect, error) {
	switch e.Kind {
	case EffectEcho:
		delay := int(math.Round(e.Delay * float64(sampleRate)))
		echo, err := audio.NewLinearFadeEcho(delay, e.Slope)
		if err != nil {
			return nil, err
		}
		echo.Dry = e.Dry
		return echo, nil
	case EffectGain:
		return audio.Lift(audio.Gain(e.Gain)), nil
	case EffectDownmix:
		return audio.Downmix{}, nil
	}
	return nil, fmt.Errorf("%w: unknown effect %q", ErrInvalidProject, e.Kind)
}
