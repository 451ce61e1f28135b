// Package schema builds Schema.org JSON-LD objects from admin-configured
// field mappings. One generator per schema type consumes resolved field
// values and applies that type's shaping rules; the assembler, validator,
// and conflict detector gate what actually reaches a page head.
package schema

import "strings"

// IsEmpty reports whether a resolved or normalized value counts as absent.
// Empty strings (after trimming), empty slices and maps, and nil are all
// the same "skip this field" signal.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// Lines splits a resolved value into trimmed, non-empty lines. A []string
// value contributes each element; a string is split on newlines.
func Lines(v any) []string {
	var raw []string
	switch t := v.(type) {
	case string:
		raw = strings.Split(t, "\n")
	case []string:
		raw = t
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return nil
	}
	var out []string
	for _, line := range raw {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Clean recursively removes empty values from a JSON-LD object. A nested
// object reduced to only @type is dropped entirely; top-level @context and
// @type are always preserved.
func Clean(obj map[string]any) map[string]any {
	return cleanObject(obj, true)
}

func cleanObject(obj map[string]any, topLevel bool) map[string]any {
	for key, v := range obj {
		if topLevel && (key == "@context" || key == "@type") {
			continue
		}
		switch t := v.(type) {
		case map[string]any:
			nested := cleanObject(t, false)
			if onlyType(nested) {
				delete(obj, key)
			} else {
				obj[key] = nested
			}
		case []any:
			cleaned := cleanSlice(t)
			if len(cleaned) == 0 {
				delete(obj, key)
			} else {
				obj[key] = cleaned
			}
		default:
			if IsEmpty(v) {
				delete(obj, key)
			}
		}
	}
	return obj
}

func cleanSlice(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case map[string]any:
			nested := cleanObject(t, false)
			if !onlyType(nested) {
				out = append(out, nested)
			}
		default:
			if !IsEmpty(item) {
				out = append(out, item)
			}
		}
	}
	return out
}

// onlyType reports whether an object is empty or carries nothing beyond
// its @type.
func onlyType(obj map[string]any) bool {
	if len(obj) == 0 {
		return true
	}
	if len(obj) == 1 {
		_, ok := obj["@type"]
		return ok
	}
	return false
}
