package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OrderedMap is a string-keyed map that preserves first-insertion order
// through JSON and YAML marshaling. encoding/json and gopkg.in/yaml.v3 both
// sort or randomize plain Go maps; several OpenAPI objects (paths,
// components.schemas, components.securitySchemes, responses, media-type
// content, response headers, example maps) need the walk's insertion order
// to survive instead, since that order reflects the order requests appeared
// in the source collection.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: map[string]V{}}
}

// Set inserts or overwrites key's value. The first call for a given key
// fixes that key's position; later calls with the same key update the value
// in place without moving it.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = map[string]V{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored at key and whether it was present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil || m.values == nil {
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON writes the map as a JSON object with keys in insertion order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the map as a block-style YAML mapping with keys in
// insertion order.
func (m OrderedMap[V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Style: 0}
	for _, k := range m.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("openapi: encoding %q: %w", k, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// orderedField is one key/value pair in an orderedFields builder.
type orderedField struct {
	key   string
	value any
}

// orderedFields assembles a JSON/YAML object from a mix of fixed and
// dynamically discovered keys whose order must be preserved together, such
// as a PathItem's summary/description/parameters alongside its per-method
// operations.
type orderedFields struct {
	fields []orderedField
}

// add appends key/value if value is not nil. Passing a typed nil pointer
// still appends, so callers that want omitempty semantics should check
// beforehand.
func (o *orderedFields) add(key string, value any) {
	if value == nil {
		return
	}
	o.fields = append(o.fields, orderedField{key: key, value: value})
}

func (o orderedFields) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o orderedFields) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range o.fields {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: f.key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(f.value); err != nil {
			return nil, fmt.Errorf("openapi: encoding %q: %w", f.key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
