package codec

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/Dave-London/pare/internal/document"
	"github.com/Dave-London/pare/internal/errors"
)

// TOML decodes and encodes standard TOML. Nested tables appear in the
// document tree as nested maps, so a table addressed by the dotted path
// mcp_servers.<id> is doc["mcp_servers"][<id>].
type TOML struct{}

// NewTOML creates the TOML codec.
func NewTOML() *TOML {
	return &TOML{}
}

// Name returns "toml".
func (c *TOML) Name() string { return "toml" }

// Decode unmarshals the text. TOML documents are tables by construction,
// so any successful decode yields a mapping.
func (c *TOML) Decode(text string) (document.Map, error) {
	m := document.Map{}
	if err := toml.Unmarshal([]byte(text), &m); err != nil {
		return nil, errors.Wrap(err, "unmarshaling toml")
	}
	return m, nil
}

// Encode marshals the document. go-toml emits a trailing newline already.
func (c *TOML) Encode(doc document.Map) (string, error) {
	data, err := toml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "marshaling toml")
	}
	return string(data), nil
}
