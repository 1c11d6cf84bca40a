// Package normalize converts the mixed historical encodings of tag lists
// (highlights, descriptions, inclusions) into plain string slices. Rows
// written before the JSON-array convention may hold Postgres array literals
// like "{A,B}" or a bare string, and all of them must read back as lists.
package normalize

import (
	"encoding/json"
	"strings"
)

// StringList normalizes a value read from storage into a list of non-empty,
// trimmed strings. Accepted inputs:
//
//	[]string               returned with empties dropped
//	`["a","b"]`            parsed as JSON
//	`{a,b,c}`              brace-stripped and split on commas
//	`plain text`           wrapped as a single-element list
//
// The function is idempotent: feeding its output back in returns the same
// list.
func StringList(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []string:
		return clean(val)
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return clean(out)
	case string:
		return fromString(val)
	}
	return []string{}
}

func fromString(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []string{}
	}

	if strings.HasPrefix(trimmed, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return clean(parsed)
		}
		// Fall through: malformed JSON is treated as a plain string
	}

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		inner := trimmed[1 : len(trimmed)-1]
		if inner == "" {
			return []string{}
		}
		parts := strings.Split(inner, ",")
		for i, p := range parts {
			parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
		}
		return clean(parts)
	}

	return []string{trimmed}
}

func clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Encode renders a list in the canonical persisted form, a JSON array.
// A nil or empty list encodes as "[]".
func Encode(items []string) string {
	cleaned := clean(items)
	data, err := json.Marshal(cleaned)
	if err != nil {
		return "[]"
	}
	return string(data)
}
