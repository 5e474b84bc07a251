package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileName is the manifest file every package manager creates.
const FileName = "package.json"

// Document is a JSON object whose keys keep their insertion order. Nested
// objects are Documents too, so a parsed manifest is written back with every
// key where it was.
type Document struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{fields: orderedmap.New[string, any]()}
}

// Parse decodes a JSON object. Anything other than an object is an error.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("manifest is not a JSON object")
	}
	d := NewDocument()
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return d, nil
}

// UnmarshalJSON replaces the document's fields with the object in data.
// Numbers are kept as json.Number so they are written back unchanged.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	fields, err := decodeObject(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after object")
	}
	d.fields = fields
	return nil
}

// decodeObject reads the members of an object whose opening brace has
// already been consumed.
func decodeObject(dec *json.Decoder) (*orderedmap.OrderedMap[string, any], error) {
	fields := orderedmap.New[string, any]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		fields.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		fields, err := decodeObject(dec)
		if err != nil {
			return nil, err
		}
		return &Document{fields: fields}, nil
	case '[':
		items := []any{}
		for dec.More() {
			item, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, fmt.Errorf("unexpected %v", delim)
}

// Read loads and parses the manifest at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	return d.fields.Get(key)
}

// Set stores value under key. An existing key keeps its position.
func (d *Document) Set(key string, value any) {
	d.fields.Set(key, value)
}

// Delete removes key if present.
func (d *Document) Delete(key string) {
	d.fields.Delete(key)
}

// Keys returns the document's own keys in order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.fields.Len())
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return d.fields.Len()
}

// Child returns the nested Document under key, creating or replacing it when
// the current value is missing or is not a Document.
func (d *Document) Child(key string) *Document {
	if v, ok := d.fields.Get(key); ok {
		if child, ok := v.(*Document); ok {
			return child
		}
	}
	child := NewDocument()
	d.fields.Set(key, child)
	return child
}

// MarshalJSON encodes the document compactly, in key order, without HTML
// escaping so shell operators such as && stay readable.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := encode(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := encode(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", pair.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal returns the document indented by two spaces with a trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the document to path.
func (d *Document) Write(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
