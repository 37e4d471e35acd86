// Package codec provides per-format decode/encode pairs for client config
// files.
//
// Each codec converts raw text to a generic document tree and back. Decode
// failures are returned as errors; deciding whether a failure is fatal or
// recoverable is the caller's job (config writers recover, everything else
// propagates). Encoders are deterministic: map keys serialize in sorted
// order, so re-encoding an unchanged document is byte-stable.
package codec

import (
	"github.com/Dave-London/pare/internal/document"
	"github.com/Dave-London/pare/internal/errors"
)

// ErrNotMapping indicates the text decoded successfully but the top level
// is not an object/mapping/table.
var ErrNotMapping = errors.New("document is not a mapping at the top level")

// Codec is a decode/encode pair for one config file format.
type Codec interface {
	// Name identifies the format (jsonc, yaml, toml) for diagnostics.
	Name() string

	// Decode converts raw text to a document tree. An empty document
	// decodes to an empty map. Returns ErrNotMapping if the top level is
	// not a mapping.
	Decode(text string) (document.Map, error)

	// Encode serializes the document tree back to text, ending with a
	// trailing newline.
	Encode(doc document.Map) (string, error)
}
