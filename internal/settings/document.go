package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrNotObject is returned when a settings document is not a JSON object.
var ErrNotObject = errors.New("settings: document is not a JSON object")

// Document is a JSON object that keeps its keys in file order and its values
// as raw JSON, so fields this package does not understand survive a
// read-modify-write cycle byte for byte (modulo indentation).
type Document struct {
	keys []string
	vals map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{vals: map[string]json.RawMessage{}}
}

// Keys returns the top-level keys in order.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Raw returns the raw JSON value stored under key.
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Set marshals v and stores it under key. New keys are appended; existing
// keys keep their position.
func (d *Document) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	if d.vals == nil {
		d.vals = map[string]json.RawMessage{}
	}
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = raw
	return nil
}

// Delete removes key if present.
func (d *Document) Delete(key string) {
	if _, ok := d.vals[key]; !ok {
		return
	}
	delete(d.vals, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
}

// Decode unmarshals the value under key into dst. It reports false when the
// key is absent or the value does not fit dst.
func (d *Document) Decode(key string, dst any) bool {
	raw, ok := d.vals[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// Clone returns a copy that can be modified independently.
func (d *Document) Clone() *Document {
	return &Document{
		keys: slices.Clone(d.keys),
		vals: maps.Clone(d.vals),
	}
}

// MarshalJSON writes the object with keys in their original order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(d.vals[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recording key order. A repeated key
// keeps its first position and its last value.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	keys := []string{}
	vals := map[string]json.RawMessage{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("settings: unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("settings: value for %q: %w", key, err)
		}
		if _, seen := vals[key]; !seen {
			keys = append(keys, key)
		}
		vals[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	d.keys = keys
	d.vals = vals
	return nil
}
