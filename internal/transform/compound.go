package transform

import (
	"encoding/json"
	"strings"
)

// toObject passes native objects through, JSON-parses strings, and wraps
// anything else under a "value" key. Internal pipeline type; never fails.
func (c *Converter) toObject(value any) Result {
	switch v := value.(type) {
	case map[string]any:
		return succeed(v)
	case string:
		if parsed, ok := parseJSONString(v); ok {
			if m, isMap := parsed.(map[string]any); isMap {
				return succeed(m)
			}
			return succeed(map[string]any{"value": parsed})
		}
		return succeed(map[string]any{"value": v})
	default:
		return succeed(map[string]any{"value": value})
	}
}

// toArray passes native arrays through, JSON-parses strings, and wraps
// anything else as a single-element slice. Internal pipeline type; never
// fails.
func (c *Converter) toArray(value any) Result {
	switch v := value.(type) {
	case []any:
		return succeed(v)
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return succeed(out)
	case string:
		if parsed, ok := parseJSONString(v); ok {
			if a, isArray := parsed.([]any); isArray {
				return succeed(a)
			}
			return succeed([]any{parsed})
		}
		return succeed([]any{v})
	default:
		return succeed([]any{value})
	}
}

// parseJSONString decodes strings that look like JSON documents.
func parseJSONString(s string) (any, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}
	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}
