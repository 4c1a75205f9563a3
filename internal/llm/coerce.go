package llm

import "strings"

// Named coercion helpers for loosely-typed model output. Every expected
// field goes through one of these instead of an inline type switch, so the
// defaulting rules stay testable in isolation.

// StringField returns the trimmed string at key, or def when the field is
// absent, not a string, or blank.
func StringField(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return def
}

// StringList returns the string elements at key. Absent or wrong-typed
// fields coerce to an empty (non-nil) slice; non-string elements are skipped.
func StringList(m map[string]any, key string) []string {
	out := []string{}
	raw, ok := m[key].([]any)
	if !ok {
		return out
	}
	for _, item := range raw {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// ObjectList returns the object elements at key, skipping anything that is
// not a JSON object. Same defaulting contract as StringList.
func ObjectList(m map[string]any, key string) []map[string]any {
	out := []map[string]any{}
	raw, ok := m[key].([]any)
	if !ok {
		return out
	}
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
