// SPDX-License-Identifier: EPL-2.0

package project

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ik5/audmix/audio"
)

var (
	// ErrInvalidProject wraps every validation failure.
	ErrInvalidProject = errors.New("invalid project")
	// ErrUnknownSource is returned when a track or dual source names a
	// source that is not defined.
	ErrUnknownSource = errors.New("unknown source")
	// ErrUnknownFormat is returned for project files that are neither TOML
	// nor YAML.
	ErrUnknownFormat = errors.New("unknown project file format")
)

// Source kinds.
const (
	KindSine = "sine"
	KindFile = "file"
	KindDual = "dual"
)

// Effect kinds.
const (
	EffectEcho    = "echo"
	EffectGain    = "gain"
	EffectDownmix = "downmix"
)

// Sides a dual source can place its input on.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// Source describes one named sound. Which fields apply depends on Kind.
type Source struct {
	Name string `toml:"-" yaml:"-"` // Name is derived from map key
	Kind string `toml:"kind" yaml:"kind"`

	// sine
	Frequency float64 `toml:"frequency" yaml:"frequency"`
	Amplitude float64 `toml:"amplitude" yaml:"amplitude"`
	Seconds   float64 `toml:"seconds" yaml:"seconds"`

	// file
	Path    string `toml:"path" yaml:"path"`
	Downmix bool   `toml:"downmix" yaml:"downmix"`

	// dual
	Of   string `toml:"of" yaml:"of"`
	Side string `toml:"side" yaml:"side"`

	// Start and End crop the source, in seconds. End 0 keeps the rest.
	Start float64 `toml:"start" yaml:"start"`
	End   float64 `toml:"end" yaml:"end"`
}

// Validate checks if the source configuration is valid.
func (s *Source) Validate() error {
	switch s.Kind {
	case KindSine:
		if s.Frequency <= 0 {
			return fmt.Errorf("frequency must be positive, got %v", s.Frequency)
		}
		if s.Seconds <= 0 {
			return fmt.Errorf("seconds must be positive, got %v", s.Seconds)
		}
	case KindFile:
		if s.Path == "" {
			return fmt.Errorf("path cannot be empty")
		}
	case KindDual:
		if s.Of == "" {
			return fmt.Errorf("of cannot be empty")
		}
		if s.Of == s.Name {
			return fmt.Errorf("source cannot reference itself")
		}
		if s.Side != SideLeft && s.Side != SideRight {
			return fmt.Errorf("side must be %q or %q, got %q", SideLeft, SideRight, s.Side)
		}
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}

	if s.Start < 0 {
		return fmt.Errorf("start cannot be negative")
	}
	if s.End != 0 && s.End < s.Start {
		return fmt.Errorf("end %v is before start %v", s.End, s.Start)
	}
	return nil
}

// Track schedules a source at one or more offsets, in seconds.
type Track struct {
	Source string    `toml:"source" yaml:"source"`
	At     []float64 `toml:"at" yaml:"at"`
}

// Validate checks if the track configuration is valid.
func (t *Track) Validate() error {
	if t.Source == "" {
		return fmt.Errorf("source cannot be empty")
	}
	if len(t.At) == 0 {
		return fmt.Errorf("at cannot be empty")
	}
	if slices.ContainsFunc(t.At, func(at float64) bool { return at < 0 }) {
		return fmt.Errorf("offsets cannot be negative")
	}
	return nil
}

// Effect is one step of the chain applied to the mixed tracks.
type Effect struct {
	Kind string `toml:"kind" yaml:"kind"`

	// echo
	Delay float64 `toml:"delay" yaml:"delay"` // seconds
	Slope float64 `toml:"slope" yaml:"slope"`
	Dry   bool    `toml:"dry" yaml:"dry"`

	// gain
	Gain float64 `toml:"gain" yaml:"gain"`
}

// Validate checks if the effect configuration is valid.
func (e *Effect) Validate() error {
	switch e.Kind {
	case EffectEcho:
		if e.Delay < 0 {
			return fmt.Errorf("delay cannot be negative")
		}
		if e.Slope <= 0 || e.Slope > 1 {
			return fmt.Errorf("slope must be in (0, 1], got %v", e.Slope)
		}
	case EffectGain, EffectDownmix:
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	return nil
}

// Project is a declarative mix: named sources, tracks scheduling them and
// an effect chain over the result.
type Project struct {
	Output     string             `toml:"output" yaml:"output"`
	SampleRate int                `toml:"sample_rate" yaml:"sample_rate"`
	Sources    map[string]*Source `toml:"sources" yaml:"sources"`
	Tracks     []Track            `toml:"tracks" yaml:"tracks"`
	Effects    []Effect           `toml:"effects" yaml:"effects"`

	// dir resolves relative file paths; set by Load.
	dir string
}

// Validate fills defaults, names sources from their keys and checks every
// part of the project, including references between sources.
func (p *Project) Validate() error {
	if p.SampleRate == 0 {
		p.SampleRate = audio.DefaultSampleRate
	}
	if p.SampleRate < 0 {
		return fmt.Errorf("%w: sample_rate cannot be negative", ErrInvalidProject)
	}
	if len(p.Tracks) == 0 {
		return fmt.Errorf("%w: no tracks", ErrInvalidProject)
	}

	for name, s := range p.Sources {
		if s == nil {
			return fmt.Errorf("%w: source '%s' is empty", ErrInvalidProject, name)
		}
		s.Name = name
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: source '%s': %w", ErrInvalidProject, name, err)
		}
	}

	for name, s := range p.Sources {
		if s.Kind != KindDual {
			continue
		}
		if _, ok := p.Sources[s.Of]; !ok {
			return fmt.Errorf("%w: %w: source '%s' references '%s'",
				ErrInvalidProject, ErrUnknownSource, name, s.Of)
		}
		if err := p.checkCycle(name); err != nil {
			return err
		}
	}

	for i := range p.Tracks {
		t := &p.Tracks[i]
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: track %d: %w", ErrInvalidProject, i, err)
		}
		if _, ok := p.Sources[t.Source]; !ok {
			return fmt.Errorf("%w: %w: track %d references '%s'",
				ErrInvalidProject, ErrUnknownSource, i, t.Source)
		}
	}

	for i := range p.Effects {
		if err := p.Effects[i].Validate(); err != nil {
			return fmt.Errorf("%w: effect %d: %w", ErrInvalidProject, i, err)
		}
	}

	return nil
}

// checkCycle follows dual references from name until it reaches a source
// that is not dual.
func (p *Project) checkCycle(name string) error {
	seen := map[string]bool{}
	for s := p.Sources[name]; s != nil && s.Kind == KindDual; s = p.Sources[s.Of] {
		if seen[s.Name] {
			return fmt.Errorf("%w: source '%s' references itself through '%s'",
				ErrInvalidProject, name, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
