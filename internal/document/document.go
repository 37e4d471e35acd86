// Package document models the untyped tree decoded from a client config
// file.
//
// All three codecs (JSONC, YAML, TOML) decode into a Map of string keys to
// arbitrary values. Consumers never type-assert on the raw tree directly;
// they go through the (value, ok) accessors here, which force every caller
// to handle the shapes it expects and reject the rest. Content the merge
// does not own passes through these trees untouched.
package document

// Map is a decoded object/mapping/table node.
type Map = map[string]any

// List is a decoded array/sequence node.
type List = []any

// AsMap returns v as a Map, or ok=false if v has any other shape.
func AsMap(v any) (Map, bool) {
	m, ok := v.(Map)
	return m, ok
}

// AsList returns v as a List, or ok=false if v has any other shape.
func AsList(v any) (List, bool) {
	l, ok := v.(List)
	return l, ok
}

// AsString returns v as a string, or ok=false if v has any other shape.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// MapAt returns the Map stored under key, or ok=false if the key is absent
// or holds a non-map value.
func MapAt(m Map, key string) (Map, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return AsMap(v)
}

// ListAt returns the List stored under key, or ok=false if the key is
// absent or holds a non-list value.
func ListAt(m Map, key string) (List, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return AsList(v)
}

// StringAt returns the string stored under key, or ok=false if the key is
// absent or holds a non-string value.
func StringAt(m Map, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	return AsString(v)
}

// EnsureMap returns the Map under key, creating an empty one if the key is
// absent. A present non-map value is replaced; the merge owns its container
// key, nothing else.
func EnsureMap(m Map, key string) Map {
	if sub, ok := MapAt(m, key); ok {
		return sub
	}
	sub := Map{}
	m[key] = sub
	return sub
}

// EnsureList returns the List under key, creating an empty one if the key
// is absent. A present non-list value is replaced. Because List append can
// reallocate, callers must assign the returned list back under key after
// mutating it.
func EnsureList(m Map, key string) List {
	if sub, ok := ListAt(m, key); ok {
		return sub
	}
	sub := List{}
	m[key] = sub
	return sub
}
