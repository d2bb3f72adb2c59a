package postgres

import (
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// normalizeValue converts pgx scan values into the plain scalars the
// transformation pipeline understands. time.Time passes through (the
// date transformer handles it); driver-specific types flatten to
// strings or floats.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val
	case [16]byte:
		return uuid.UUID(val).String()
	case pgtype.Numeric:
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case netip.Addr:
		return val.String()
	case netip.Prefix:
		return val.String()
	case []byte:
		return string(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return val
	}
}
