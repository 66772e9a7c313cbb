package util

import (
	"fmt"
	"strconv"
)

// Loose-payload field picking. Some upstreams send the same logical field
// under several names depending on plan or endpoint version. Each Pick
// helper walks its alias list in order and returns the first usable
// value, so precedence is the alias order at the call site.

func PickString(m map[string]any, aliases ...string) string {
	for _, k := range aliases {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if CleanText(s) != "" {
				return CleanText(s)
			}
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		}
	}
	return ""
}

func PickFloat(m map[string]any, aliases ...string) float64 {
	for _, k := range aliases {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			if n != 0 {
				return n
			}
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil && f != 0 {
				return f
			}
		}
	}
	return 0
}

func PickBool(m map[string]any, aliases ...string) bool {
	for _, k := range aliases {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch b := v.(type) {
		case bool:
			if b {
				return true
			}
		case string:
			if b == "true" || b == "TRUE" || b == "yes" {
				return true
			}
		}
	}
	return false
}

func PickStrings(m map[string]any, aliases ...string) []string {
	for _, k := range aliases {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		// nested objects arrive as map[string]any after json decode
		if nested, ok := v.(map[string]any); ok {
			for _, inner := range nested {
				if xs := toStrings(inner); len(xs) > 0 {
					return xs
				}
			}
			continue
		}
		if xs := toStrings(v); len(xs) > 0 {
			return xs
		}
	}
	return nil
}

func toStrings(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		s := CleanText(fmt.Sprint(e))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
