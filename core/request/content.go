package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"upwind24-go/core/domain"
	coreerrors "upwind24-go/core/errors"
)

// isEmpty reports whether content should be ignored: nil, a nil pointer
// or an empty map, slice, array or string
func isEmpty(content any) bool {
	if content == nil {
		return true
	}

	v := reflect.ValueOf(content)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return v.Len() == 0
	}
	return false
}

// encodeBody serializes content as JSON with slashes and HTML left unescaped
func encodeBody(content any) ([]byte, error) {
	body, err := encodeJSON(content)
	if err != nil {
		return nil, &coreerrors.InvalidParameterError{
			Parameter: "content",
			Message:   "cannot encode request body",
			Cause:     err,
		}
	}
	return body, nil
}

// toParams flattens content into ordered key/value pairs. Params keep
// their order, structs follow field order and maps are sorted by key.
func toParams(content any) (domain.Params, error) {
	if p, ok := content.(domain.Params); ok {
		out := make(domain.Params, 0, len(p))
		for _, param := range p {
			value, err := normalizeValue(param.Value)
			if err != nil {
				return nil, invalidQuery(err)
			}
			out = append(out, domain.Param{Key: param.Key, Value: value})
		}
		return out, nil
	}

	data, err := encodeJSON(content)
	if err != nil {
		return nil, invalidQuery(err)
	}

	params, err := decodeObject(data)
	if err != nil {
		return nil, invalidQuery(err)
	}
	return params, nil
}

// decodeObject reads a JSON object keeping the order of its members
func decodeObject(data []byte) (domain.Params, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a key-value mapping, got %s", data)
	}

	var params domain.Params
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		params = params.Add(key, value)
	}

	return params, nil
}

// normalizeValue maps an arbitrary Go value onto the JSON value space
// (nil, bool, string, json.Number, []any, map[string]any)
func normalizeValue(v any) (any, error) {
	switch v.(type) {
	case nil, bool, string, json.Number:
		return v, nil
	}

	data, err := encodeJSON(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func invalidQuery(err error) error {
	return &coreerrors.InvalidParameterError{
		Parameter: "content",
		Message:   "cannot encode query parameters",
		Cause:     err,
	}
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
