package request

import (
	"encoding/json"
	"net/url"
	"strings"

	"upwind24-go/core/domain"
)

// queryOf returns the raw query string of rawURL, without fragment
func queryOf(rawURL string) string {
	_, rest, found := strings.Cut(rawURL, "?")
	if !found {
		return ""
	}
	query, _, _ := strings.Cut(rest, "#")
	return query
}

// withQuery replaces the query string of rawURL, keeping any fragment
func withQuery(rawURL, query string) string {
	base, fragment, hasFragment := strings.Cut(rawURL, "#")
	base, _, _ = strings.Cut(base, "?")

	if query != "" {
		base += "?" + query
	}
	if hasFragment {
		base += "#" + fragment
	}
	return base
}

// parseQuery splits a raw query into ordered pairs. A key without '='
// gets a nil value. Later duplicates win.
func parseQuery(raw string) domain.Params {
	var params domain.Params
	for _, element := range strings.Split(raw, "&") {
		if element == "" {
			continue
		}

		key, value, hasValue := strings.Cut(element, "=")
		if !hasValue {
			params = params.Add(unescape(key), nil)
			continue
		}
		params = params.Add(unescape(key), unescape(value))
	}
	return params.Merge(nil)
}

// encodeQuery renders params as an RFC 3986 query string. Slices repeat
// their key, nil values render as a bare key.
func encodeQuery(params domain.Params) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		key := escape(param.Key)
		if items, ok := param.Value.([]any); ok {
			for _, item := range items {
				parts = append(parts, pair(key, item))
			}
			continue
		}
		parts = append(parts, pair(key, param.Value))
	}
	return strings.Join(parts, "&")
}

func pair(key string, value any) string {
	s, ok := formatValue(value)
	if !ok {
		return key
	}
	return key + "=" + escape(s)
}

// formatValue renders a query value. Booleans become "true"/"false".
func formatValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		data, err := encodeJSON(v)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func unescape(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return s
}
