package transform

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// Truthy and falsy word sets for boolean conversion, English and Portuguese.
var (
	truthyWords = map[string]struct{}{
		"true": {}, "yes": {}, "y": {}, "1": {}, "sim": {}, "s": {}, "verdadeiro": {},
	}
	falsyWords = map[string]struct{}{
		"false": {}, "no": {}, "n": {}, "0": {}, "não": {}, "nao": {}, "falso": {},
	}
)

// toString coerces any non-nil value to plain text. Never fails: timestamps
// become ISO-8601 strings, composites are JSON-encoded, scalars use their
// native string form.
func (c *Converter) toString(value any) Result {
	return succeed(stringify(value))
}

// toNumber produces a float64. Strings are trimmed and parsed, booleans map
// to 0/1, timestamps to epoch milliseconds. NaN never passes.
func (c *Converter) toNumber(value any) Result {
	switch v := value.(type) {
	case bool:
		if v {
			return succeed(float64(1))
		}
		return succeed(float64(0))
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return c.failure(domain.FieldTypeNumber, "empty string is not a number")
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) {
			return c.failure(domain.FieldTypeNumber, fmt.Sprintf("%q is not numeric", v))
		}
		return succeed(f)
	case time.Time:
		return succeed(float64(v.UnixMilli()))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return c.failure(domain.FieldTypeNumber, fmt.Sprintf("%q is not numeric", v.String()))
		}
		return succeed(f)
	}

	if f, ok := asFloat(value); ok {
		if math.IsNaN(f) {
			return c.failure(domain.FieldTypeNumber, "NaN is not a number value")
		}
		return succeed(f)
	}
	return c.failure(domain.FieldTypeNumber, fmt.Sprintf("cannot convert %T to number", value))
}

// toBoolean passes booleans through, matches strings against the bilingual
// truthy/falsy word sets, and tests numbers for non-zero.
func (c *Converter) toBoolean(value any) Result {
	switch v := value.(type) {
	case bool:
		return succeed(v)
	case string:
		word := strings.ToLower(strings.TrimSpace(v))
		if _, ok := truthyWords[word]; ok {
			return succeed(true)
		}
		if _, ok := falsyWords[word]; ok {
			return succeed(false)
		}
		return c.failure(domain.FieldTypeBoolean, fmt.Sprintf("%q is not a boolean word", v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return c.failure(domain.FieldTypeBoolean, fmt.Sprintf("%q is not a boolean value", v.String()))
		}
		return succeed(f != 0)
	}

	if f, ok := asFloat(value); ok {
		return succeed(f != 0)
	}
	return c.failure(domain.FieldTypeBoolean, fmt.Sprintf("cannot convert %T to boolean", value))
}

// toEnum coerces the value to its string form. Always succeeds; the
// destination store owns option membership.
func (c *Converter) toEnum(value any) Result {
	return succeed(stringify(value))
}

// stringify is the shared string coercion used by the string, enum and
// reference transformers. Numbers keep their shortest form (1.0 renders as
// "1"), composites are JSON-encoded.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case json.Number:
		return v.String()
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case []byte:
		return string(v)
	case map[string]any, []any:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", v)
	default:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", v)
	}
}

// asFloat widens any native numeric value to float64.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
