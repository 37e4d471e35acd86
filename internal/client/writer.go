package client

import (
	"log/slog"

	"github.com/Dave-London/pare/internal/document"
	"github.com/Dave-London/pare/internal/logging"
	"github.com/Dave-London/pare/internal/registry"
	"github.com/Dave-London/pare/internal/runner"
	"github.com/Dave-London/pare/internal/store"
)

// Writer merges server entries into one client's config file.
//
// Write is idempotent, dedupes records by server id, and preserves content
// it does not own: unknown top-level keys, unknown sibling fields inside a
// merged record, and extra fields on list records all survive. Comments in
// JSONC files do not survive a re-encode; that is an accepted property of
// the format.
//
// A Writer holds no state between invocations; each call decodes a fresh
// document. Concurrent Write calls against the same path are not
// serialized here; callers targeting one path must serialize themselves.
type Writer struct {
	format Format
	store  store.Store
	logger *slog.Logger
}

// NewWriter creates a writer for the given client format backed by st.
// A nil logger discards the recovery warnings writers emit.
func NewWriter(format Format, st store.Store, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Writer{
		format: format,
		store:  st,
		logger: logger,
	}
}

// Client returns the writer's client name.
func (w *Writer) Client() string {
	return w.format.Client
}

// Write merges entries into the config file at path and returns the final
// serialized text. Entries are applied in order, so a later duplicate id
// overwrites an earlier one. Exactly one read and one write are performed.
//
// An unreadable or malformed existing file is logged as a warning and
// replaced with a fresh document; store I/O failures and an empty package
// reference are fatal for the invocation.
func (w *Writer) Write(path string, entries []registry.ServerEntry, platform runner.Platform) (string, error) {
	doc, err := w.load(path)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		cmd, err := runner.Resolve(entry.Pkg, platform)
		if err != nil {
			return "", err
		}
		w.upsert(doc, entry.ID, cmd)
	}

	text, err := w.format.Codec.Encode(doc)
	if err != nil {
		return "", err
	}

	if err := w.store.Write(path, text); err != nil {
		return "", err
	}

	return text, nil
}

// load reads and decodes the existing document at path. An absent file
// yields the format template; a decode failure is recovered with a warning
// and the template. Only store I/O failures are returned.
func (w *Writer) load(path string) (document.Map, error) {
	text, ok, err := w.store.Read(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return w.format.Template(), nil
	}

	doc, err := w.format.Codec.Decode(text)
	if err != nil {
		w.logger.Warn("existing config is invalid, starting from a fresh document",
			"client", w.format.Client,
			"path", path,
			"format", w.format.Codec.Name(),
			"error", err)
		return w.format.Template(), nil
	}
	return doc, nil
}

// upsert applies the format's addressing rule for one server record.
func (w *Writer) upsert(doc document.Map, id string, cmd runner.Command) {
	record := w.format.Record(id, cmd)

	switch w.format.Shape {
	case ShapeList:
		w.upsertList(doc, id, record)
	default:
		w.upsertKeyed(doc, id, record)
	}
}

// upsertKeyed inserts or updates the record under its id in the container
// map. An existing record keeps any sibling fields this writer does not
// own; a non-map value under the id is replaced outright.
func (w *Writer) upsertKeyed(doc document.Map, id string, record document.Map) {
	container := document.EnsureMap(doc, w.format.ContainerKey)

	if existing, ok := document.MapAt(container, id); ok {
		for k, v := range record {
			existing[k] = v
		}
		return
	}
	container[id] = record
}

// upsertList scans the container list for a record whose identifying field
// equals id. A match is updated in place, keeping its position and extra
// fields; otherwise the record is appended.
func (w *Writer) upsertList(doc document.Map, id string, record document.Map) {
	list := document.EnsureList(doc, w.format.ContainerKey)

	for _, el := range list {
		m, ok := document.AsMap(el)
		if !ok {
			continue
		}
		if name, _ := document.StringAt(m, w.format.IdentifyField); name == id {
			for k, v := range record {
				m[k] = v
			}
			return
		}
	}

	doc[w.format.ContainerKey] = append(list, record)
}
