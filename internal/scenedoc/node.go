package scenedoc

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes text into the document's root node, unwrapping the
// top-level yaml.DocumentNode that yaml.Unmarshal produces. A document
// with no content (an empty or all-comment file) returns a nil node and a
// nil error.
func Parse(text string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("scenedoc: parsing scene document: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}

// IsNull reports whether n is absent or an explicit YAML null.
func IsNull(n *yaml.Node) bool {
	return n == nil || n.Tag == "!!null"
}

// IsScalar reports whether n is a non-null scalar.
func IsScalar(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && !IsNull(n)
}

// IsMapping reports whether n is a mapping node.
func IsMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n is a sequence node.
func IsSequence(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

// NewString returns a plain scalar node holding s.
func NewString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// SetScalar mutates n in place to hold s, the way the URL rewriter
// replaces scalar leaves in place.
func SetScalar(n *yaml.Node, s string) {
	n.Tag = "!!str"
	n.Value = s
	n.Style = 0
}

// MapGet returns the value associated with key in mapping m, or nil if m
// is not a mapping or has no such key.
func MapGet(m *yaml.Node, key string) *yaml.Node {
	if !IsMapping(m) {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// MapSet assigns key to value within mapping m, replacing any existing
// entry in place (preserving its position) or appending a new one.
func MapSet(m *yaml.Node, key string, value *yaml.Node) {
	if !IsMapping(m) {
		return
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, NewString(key), value)
}

// MapDelete removes key from mapping m, if present.
func MapDelete(m *yaml.Node, key string) {
	if !IsMapping(m) {
		return
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return
		}
	}
}

// MapEntry is one (key, value) pair of a mapping node, in source order.
type MapEntry struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// MapEntries returns m's entries in source order. It returns nil if m is
// not a mapping.
func MapEntries(m *yaml.Node) []MapEntry {
	if !IsMapping(m) {
		return nil
	}
	entries := make([]MapEntry, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		entries = append(entries, MapEntry{Key: m.Content[i], Value: m.Content[i+1]})
	}
	return entries
}

// decodesAsBool reports whether n's resolved type is boolean — i.e. it is
// an unquoted scalar recognized as a YAML bool, not merely text that
// happens to read "true".
func decodesAsBool(n *yaml.Node) bool {
	var b bool
	return n.Decode(&b) == nil
}

// decodesAsNumber reports whether n's resolved type is numeric.
func decodesAsNumber(n *yaml.Node) bool {
	var f float64
	return n.Decode(&f) == nil
}

// IsPotentialURL reports whether n is a scalar that could name a
// resource: non-null, and not a "global." reference.
func IsPotentialURL(n *yaml.Node) bool {
	if !IsScalar(n) {
		return false
	}
	return !strings.HasPrefix(n.Value, "global.")
}

// IsTextureURL reports whether n is a potential URL that is neither a
// boolean nor a numeric literal, nor the name of an entry in the
// textures mapping — the classification that stops numeric
// shader-uniform values and named-texture references from being
// mistaken for file paths.
func IsTextureURL(n *yaml.Node, textures *yaml.Node) bool {
	if !IsPotentialURL(n) {
		return false
	}
	if decodesAsBool(n) || decodesAsNumber(n) {
		return false
	}
	if textures != nil && MapGet(textures, n.Value) != nil {
		return false
	}
	return true
}
