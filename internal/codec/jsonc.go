package codec

import (
	"encoding/json"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/Dave-London/pare/internal/document"
	"github.com/Dave-London/pare/internal/errors"
)

// JSONC decodes JSON with comments and trailing commas (a strict superset
// of JSON) and encodes canonical two-space-indented JSON. Comments do not
// survive a re-encode; that loss is an accepted property of the format,
// not an error.
type JSONC struct{}

// NewJSONC creates the JSON-with-comments codec.
func NewJSONC() *JSONC {
	return &JSONC{}
}

// Name returns "jsonc".
func (c *JSONC) Name() string { return "jsonc" }

// Decode standardizes the JWCC dialect to plain JSON, then unmarshals.
func (c *JSONC) Decode(text string) (document.Map, error) {
	if strings.TrimSpace(text) == "" {
		return document.Map{}, nil
	}

	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		return nil, errors.Wrap(err, "standardizing jsonc")
	}

	var v any
	if err := json.Unmarshal(std, &v); err != nil {
		return nil, errors.Wrap(err, "unmarshaling json")
	}

	m, ok := document.AsMap(v)
	if !ok {
		return nil, ErrNotMapping
	}
	return m, nil
}

// Encode emits canonical JSON with 2-space indentation and a trailing
// newline for POSIX compliance.
func (c *JSONC) Encode(doc document.Map) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshaling json")
	}
	return string(data) + "\n", nil
}
