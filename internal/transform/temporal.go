package transform

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// dateLayouts are tried in order when parsing a date string: RFC3339 with
// optional fraction, the same without a zone (Postgres timestamp text, T or
// space separated), and bare dates. Zone-less layouts parse as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// toDate produces the canonical date wire value: a UTC ISO-8601 string.
// Timestamps are validated, strings parsed against the known layouts,
// numbers read as epoch milliseconds.
func (c *Converter) toDate(value any) Result {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return c.failure(domain.FieldTypeDate, "zero time is not a valid date")
		}
		return succeed(isoDate(v))
	case string:
		t, err := parseDateString(v)
		if err != nil {
			return c.failure(domain.FieldTypeDate, fmt.Sprintf("%q is not a parseable date", v))
		}
		return succeed(isoDate(t))
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return c.failure(domain.FieldTypeDate, fmt.Sprintf("%q is not an epoch value", v.String()))
			}
			ms = int64(f)
		}
		return succeed(isoDate(time.UnixMilli(ms)))
	}

	if f, ok := asFloat(value); ok {
		return succeed(isoDate(time.UnixMilli(int64(f))))
	}
	return c.failure(domain.FieldTypeDate, fmt.Sprintf("cannot convert %T to date", value))
}

// parseDateString tries each known layout on the trimmed input.
func parseDateString(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matched %q", s)
}

func isoDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
