package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotAnObject = errors.New("document is not a JSON object")

// Document is the Financial State Object shared across pipeline steps.
// Values are kept as raw JSON so keys this step does not own round-trip
// byte for byte.
type Document map[string]json.RawMessage

func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnObject, err)
	}
	if doc == nil {
		return nil, ErrNotAnObject
	}
	return doc, nil
}

// Clone returns a deep copy; the raw values are copied too.
func (d Document) Clone() Document {
	out := make(Document, len(d)+1)
	for k, v := range d {
		cp := make(json.RawMessage, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// With returns a copy of d with key set to the JSON encoding of value.
// d itself is left untouched.
func (d Document) With(key string, value any) (Document, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}
	out := d.Clone()
	out[key] = raw
	return out, nil
}

func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}
