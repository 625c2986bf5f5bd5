package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a manifest held as a YAML node tree rather than a decoded
// struct. Edits touch individual scalar values in place, so comments, key
// order, and the formatting of every untouched field survive a round-trip.
type Document struct {
	root *yaml.Node
}

// ParseDocument parses raw manifest content into a Document.
// The top level must be a YAML mapping.
func ParseDocument(data []byte) (*Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	if n.Kind != yaml.DocumentNode || len(n.Content) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}
	if n.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manifest root must be a mapping")
	}
	return &Document{root: &n}, nil
}

// Encode serializes the document back to YAML.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// mapping returns the top-level mapping node.
func (d *Document) mapping() *yaml.Node {
	return d.root.Content[0]
}

// Scalar returns the scalar value at the given key path, and whether a
// scalar was present there.
func (d *Document) Scalar(keys ...string) (string, bool) {
	n := d.mapping()
	for _, k := range keys {
		n = lookup(n, k)
		if n == nil {
			return "", false
		}
	}
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", false
	}
	return n.Value, true
}

// Strings returns the sequence of scalar values at the given key path.
func (d *Document) Strings(keys ...string) ([]string, bool) {
	n := d.mapping()
	for _, k := range keys {
		n = lookup(n, k)
		if n == nil {
			return nil, false
		}
	}
	if n.Kind != yaml.SequenceNode {
		return nil, false
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return nil, false
		}
		out = append(out, c.Value)
	}
	return out, true
}

// lookup returns the value node for key inside mapping m, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// setScalar rewrites a scalar node's value in place. Quoting style is kept;
// the tag is forced to string so versions like "1.0" stay strings.
// Reports whether the value actually changed.
func setScalar(n *yaml.Node, value string) bool {
	if n == nil || n.Kind != yaml.ScalarNode || n.Value == value {
		return false
	}
	n.Value = value
	n.Tag = "!!str"
	return true
}
