// Package export renders parsed frontmatter in interchange formats.
package export

import (
	"bytes"
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sklint/internal/errors"
	"github.com/thoreinstein/sklint/pkg/frontmatter"
)

// Format identifies an output encoding.
type Format string

const (
	// FormatJSON encodes as indented JSON, preserving key order.
	FormatJSON Format = "json"
	// FormatYAML encodes as YAML, preserving key order.
	FormatYAML Format = "yaml"
	// FormatTOML encodes as TOML. TOML tables are unordered, so key
	// order is not preserved.
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML, FormatTOML:
		return Format(name), nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownFormat, "%q (supported: json, yaml, toml)", name)
	}
}

// Marshal encodes a parsed header in the given format.
func Marshal(m *frontmatter.Mapping, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return nil, errors.Wrap(err, "encoding JSON")
		}
		return buf.Bytes(), nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, errors.Wrap(err, "encoding YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "closing YAML encoder")
		}
		return buf.Bytes(), nil

	case FormatTOML:
		data, err := toml.Marshal(m.AsMap())
		if err != nil {
			return nil, errors.Wrap(err, "encoding TOML")
		}
		return data, nil

	default:
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%q", format)
	}
}
