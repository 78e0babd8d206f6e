package domain

import (
	"bytes"
	"encoding/json"
)

// Get returns the last value stored for key
func (p Params) Get(key string) (any, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return nil, false
}

// Merge overlays other on p. A key keeps the position of its first
// occurrence and takes the value of its last one.
func (p Params) Merge(other Params) Params {
	merged := make(Params, 0, len(p)+len(other))
	index := make(map[string]int, len(p)+len(other))

	for _, src := range []Params{p, other} {
		for _, param := range src {
			if i, ok := index[param.Key]; ok {
				merged[i].Value = param.Value
				continue
			}
			index[param.Key] = len(merged)
			merged = append(merged, param)
		}
	}

	return merged
}

func marshalOrdered(p Params) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, param := range p.Merge(nil) {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := encodeJSON(param.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := encodeJSON(param.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON marshals v without HTML escaping and without a trailing newline
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
