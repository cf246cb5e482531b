// SPDX-License-Identifier: EPL-2.0

package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Project file formats, named by extension.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatOf maps a file name to FormatTOML or FormatYAML.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads, parses and validates a project file. Relative source paths
// and the output path are resolved against the file's directory.
func Load(path string, log zerolog.Logger) (*Project, error) {
	log.Debug().Str("path", path).Msg("Loading project file")

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	p, err := Parse(data, format, log)
	if err != nil {
		return nil, err
	}
	p.dir = filepath.Dir(path)

	return p, nil
}

// Parse decodes and validates a project held in memory.
func Parse(data []byte, format string, log zerolog.Logger) (*Project, error) {
	var p Project

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidProject, undecoded[0])
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("format", format).
		Int("sources", len(p.Sources)).
		Int("tracks", len(p.Tracks)).
		Int("effects", len(p.Effects)).
		Int("sample_rate", p.SampleRate).
		Msg("Project parsed and validated")

	return &p, nil
}

// resolve makes path relative to the project file's directory.
func (p *Project) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || p.dir == "" {
		return path
	}
	return filepath.Join(p.dir, path)
}

// OutputPath is Output resolved against the project file's directory.
func (p *Project) OutputPath() string {
	return p.resolve(p.Output)
}
