package tabular

import (
	"bytes"
	"encoding/json"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Record is one parsed data line: an ordered mapping from column key to
// trimmed cell value. The zero Record is empty and ready to use.
type Record struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewRecord returns a record holding pairs in order. Later duplicates
// overwrite the value but keep the first position.
func NewRecord(pairs ...string) Record {
	var r Record
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Set stores value under key, appending key if it is new.
func (r *Record) Set(key, value string) {
	if r.m == nil {
		r.m = orderedmap.New[string, string]()
	}
	r.m.Set(key, value)
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	if r.m == nil {
		return "", false
	}
	return r.m.Get(key)
}

// Len returns the number of fields.
func (r Record) Len() int {
	if r.m == nil {
		return 0
	}
	return r.m.Len()
}

// All iterates over the fields in column order.
func (r Record) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if r.m == nil {
			return
		}
		for p := r.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns the field names in column order.
func (r Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	for k := range r.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the field values in column order.
func (r Record) Values() []string {
	values := make([]string, 0, r.Len())
	for _, v := range r.All() {
		values = append(values, v)
	}
	return values
}

// Header returns the keys; it lets a record act as its own header row.
func (r Record) Header() []string { return r.Keys() }

// Row returns the values.
func (r Record) Row() []string { return r.Values() }

// Map returns an unordered copy of the fields.
func (r Record) Map() map[string]string {
	m := make(map[string]string, r.Len())
	for k, v := range r.All() {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the record as a JSON object in column order, without
// HTML escaping.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	first := true
	for k, v := range r.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encodeString(&buf, enc, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeString(&buf, enc, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeString writes s as a JSON string, dropping the newline Encode adds.
func encodeString(buf *bytes.Buffer, enc *json.Encoder, s string) error {
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// UnmarshalJSON decodes a JSON object of strings, keeping key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, string]()
	if err := m.UnmarshalJSON(data); err != nil {
		return err
	}
	r.m = m
	return nil
}

// MarshalYAML encodes the record as a YAML mapping in column order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range r.All() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}
	return node, nil
}
