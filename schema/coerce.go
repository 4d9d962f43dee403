package schema

import (
	"strconv"
	"strings"
	"time"
)

// ExpandForm lifts flat multipart form keys into nested maps. Keys use
// bracket notation: "personalInfo[socialLinks][github]" becomes three
// nested levels. Values stay strings; Coerce types them afterwards. Only
// the first value of a repeated key is kept.
func ExpandForm(values map[string][]string) map[string]any {
	out := map[string]any{}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		path := splitBracketKey(key)
		node := out
		for i, part := range path {
			if i == len(path)-1 {
				if _, exists := node[part]; !exists {
					node[part] = vals[0]
				}
				break
			}
			child, ok := node[part].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[part] = child
			}
			node = child
		}
	}
	return out
}

func splitBracketKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return []string{key}
	}
	parts := []string{key[:open]}
	rest := key[open:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			parts = append(parts, rest)
			break
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			parts = append(parts, rest[1:])
			break
		}
		parts = append(parts, rest[1:end])
		rest = rest[end+1:]
	}
	return parts
}

// Coerce normalizes a decoded request body against the schema. Fields not
// declared in the schema are dropped, malformed values degrade to "not
// provided" instead of erroring, and re-running it over already-native
// JSON input is a no-op.
func Coerce(s Schema, raw map[string]any) map[string]any {
	return coerceFields(s.Fields, raw)
}

func coerceFields(fields []Field, raw map[string]any) map[string]any {
	out := map[string]any{}
	for _, f := range fields {
		v, ok := raw[f.Name]
		if !ok || v == nil {
			continue
		}
		switch f.Kind {
		case String:
			if s, ok := v.(string); ok {
				out[f.Name] = s
			}
		case StringList:
			if list, ok := coerceStringList(v); ok {
				out[f.Name] = list
			}
		case Bool:
			if b, ok := coerceBool(v); ok {
				out[f.Name] = b
			}
		case Int:
			if n, ok := coerceInt(v); ok {
				out[f.Name] = n
			}
		case Time:
			if t, ok := coerceTime(v); ok {
				out[f.Name] = t
			}
		case Object:
			if m, ok := v.(map[string]any); ok {
				out[f.Name] = coerceFields(f.Fields, m)
			}
		}
	}
	return out
}

func coerceStringList(v any) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	case string:
		// "React, Node.js,MongoDB" -> ["React", "Node.js", "MongoDB"].
		// An empty source string yields an empty list, not an absent field.
		list := []string{}
		for _, part := range strings.Split(val, ",") {
			if part = strings.TrimSpace(part); part != "" {
				list = append(list, part)
			}
		}
		return list, true
	}
	return nil, false
}

func coerceBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		if val == "true" {
			return true, true
		}
		if val == "false" {
			return false, true
		}
	}
	return false, false
}

func coerceInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

var timeLayouts = []string{time.RFC3339, "2006-01-02"}

func coerceTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
