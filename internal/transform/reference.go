package transform

import (
	"encoding/json"
	"strings"
)

// referenceID extracts the identifier a reference value points at: objects
// contribute their id/_id key, everything else is stringified whole.
// Ambiguous values still produce an id; references never fail.
func referenceID(value any) string {
	if m, ok := value.(map[string]any); ok {
		if id, present := m["id"]; present && id != nil {
			return stringify(id)
		}
		if id, present := m["_id"]; present && id != nil {
			return stringify(id)
		}
	}
	return stringify(value)
}

// toCollectionReference produces the referenced item's id as a string.
func (c *Converter) toCollectionReference(value any) Result {
	return succeed(referenceID(value))
}

// toMultiCollectionReference produces a list of referenced ids. Arrays map
// element-wise through referenceID, JSON-looking strings are parsed and
// recursed, scalars become a single-element list.
func (c *Converter) toMultiCollectionReference(value any) Result {
	switch v := value.(type) {
	case []any:
		ids := make([]string, 0, len(v))
		for _, element := range v {
			ids = append(ids, referenceID(element))
		}
		return succeed(ids)
	case []string:
		ids := make([]string, len(v))
		copy(ids, v)
		return succeed(ids)
	case string:
		trimmed := strings.TrimSpace(v)
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
			var parsed any
			if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
				return c.toMultiCollectionReference(parsed)
			}
		}
		return succeed([]string{referenceID(value)})
	default:
		return succeed([]string{referenceID(value)})
	}
}
