package transform

import (
	"fmt"
	"reflect"
	"time"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// ConsistencyReport is the verdict of one consistency check.
type ConsistencyReport struct {
	Valid   bool
	Details string
}

// CheckConsistency verifies that a conversion's observable behaviour matches
// the declared semantics of the target type (the same Description table the
// CLI shows). Failed conversions must return exactly the injected default
// and a non-empty error; successful conversions must produce the type's
// canonical shape. This is a test-time contract, not a runtime sync step.
func CheckConsistency(c *Converter, target domain.FieldType, value any) ConsistencyReport {
	result := c.Convert(value, target)

	if !target.IsValid() {
		if result.Success {
			return invalid(target, "unknown type must not convert successfully")
		}
		return ConsistencyReport{Valid: true, Details: "unknown type rejected"}
	}

	if !result.Success {
		if result.Error == "" {
			return invalid(target, "failure carries no error message")
		}
		expected := c.defaults.Value(target)
		if !reflect.DeepEqual(result.Value, expected) {
			return invalid(target, fmt.Sprintf("failure value %#v is not the default %#v", result.Value, expected))
		}
		return ConsistencyReport{Valid: true, Details: "failure fell back to the default"}
	}

	if problem := shapeProblem(target, result.Value, c.defaults); problem != "" {
		return invalid(target, problem)
	}
	return ConsistencyReport{Valid: true, Details: "success value matches the declared shape"}
}

func invalid(target domain.FieldType, problem string) ConsistencyReport {
	return ConsistencyReport{
		Valid:   false,
		Details: fmt.Sprintf("%s: %s (contract: %s)", target, problem, target.Description()),
	}
}

// shapeProblem checks a successful value against the canonical Go shape of
// its type. An empty return means the shape is consistent. A value equal to
// the type's default is always consistent: null input succeeds with the
// default for every type.
func shapeProblem(target domain.FieldType, value any, defaults domain.Defaults) string {
	if reflect.DeepEqual(value, defaults.Value(target)) {
		return ""
	}

	switch target {
	case domain.FieldTypeString, domain.FieldTypeFormattedText, domain.FieldTypeEnum,
		domain.FieldTypeLink, domain.FieldTypeCollectionReference:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("expected string, got %T", value)
		}
	case domain.FieldTypeNumber:
		if _, ok := value.(float64); !ok {
			return fmt.Sprintf("expected float64, got %T", value)
		}
	case domain.FieldTypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("expected bool, got %T", value)
		}
	case domain.FieldTypeDate:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("expected ISO string, got %T", value)
		}
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return fmt.Sprintf("%q is not an ISO-8601 timestamp", s)
		}
	case domain.FieldTypeColor:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("expected colour string, got %T", value)
		}
		if !hexColorRe.MatchString(s) && !rgbColorRe.MatchString(s) {
			return fmt.Sprintf("%q is not hex or rgb() syntax", s)
		}
	case domain.FieldTypeImage, domain.FieldTypeFile:
		m, ok := value.(map[string]any)
		if !ok {
			return fmt.Sprintf("expected url-carrying object, got %T", value)
		}
		if u, has := m["url"].(string); !has || u == "" {
			return "object carries no url"
		}
	case domain.FieldTypeMultiCollectionReference:
		if _, ok := value.([]string); !ok {
			return fmt.Sprintf("expected []string, got %T", value)
		}
	case domain.FieldTypeObject:
		if _, ok := value.(map[string]any); !ok {
			return fmt.Sprintf("expected object, got %T", value)
		}
	case domain.FieldTypeArray:
		if _, ok := value.([]any); !ok {
			return fmt.Sprintf("expected array, got %T", value)
		}
	}
	return ""
}
