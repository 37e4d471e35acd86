package codec

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dave-London/pare/internal/document"
	"github.com/Dave-London/pare/internal/errors"
)

// YAML decodes and encodes standard scalar/mapping/sequence YAML.
// A document that is not a mapping at the top level is a decode failure.
type YAML struct{}

// NewYAML creates the YAML codec.
func NewYAML() *YAML {
	return &YAML{}
}

// Name returns "yaml".
func (c *YAML) Name() string { return "yaml" }

// Decode unmarshals the text and requires a top-level mapping.
func (c *YAML) Decode(text string) (document.Map, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return nil, errors.Wrap(err, "unmarshaling yaml")
	}

	// An empty document decodes to nil.
	if v == nil {
		return document.Map{}, nil
	}

	m, ok := document.AsMap(v)
	if !ok {
		return nil, ErrNotMapping
	}
	return m, nil
}

// Encode marshals the document, ensuring a trailing newline.
func (c *YAML) Encode(doc document.Map) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", errors.Wrap(err, "marshaling yaml")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "closing yaml encoder")
	}
	return sb.String(), nil
}
