// Package transform converts loosely-typed source values into the canonical
// wire representation of each destination field type.
//
// One transformer per type, all routed through Converter.Convert. Every
// transformer returns a Result whose Value is always populated: the
// converted value on success, the type's default on failure. Transformers
// never panic past Convert; recovered panics become failed Results. The
// default table is injected so tests can substitute entries.
package transform

import (
	"fmt"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// Result is the uniform outcome of one value conversion. Value is populated
// even on failure (with the target type's default) so downstream code never
// branches on a missing value.
type Result struct {
	Success bool
	Value   any
	Error   string
}

// Converter routes values to the per-type transformers.
type Converter struct {
	defaults domain.Defaults
}

// New builds a Converter around the given default-value table. A nil table
// falls back to the canonical defaults.
func New(defaults domain.Defaults) *Converter {
	if defaults == nil {
		defaults = domain.NewDefaults()
	}
	return &Converter{defaults: defaults}
}

// Defaults exposes the injected default-value table.
func (c *Converter) Defaults() domain.Defaults {
	return c.defaults
}

// Convert transforms value into the canonical representation of the target
// type. Total over the type enumeration: unknown types yield a failed
// Result with a nil value. Nil input succeeds with the type's default for
// every known type.
func (c *Converter) Convert(value any, target domain.FieldType) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Success: false,
				Value:   c.defaults.Value(target),
				Error:   fmt.Sprintf("conversion panic: %v", r),
			}
		}
	}()

	if !target.IsValid() {
		return Result{Success: false, Value: nil, Error: "unknown field type"}
	}

	if value == nil {
		return succeed(c.defaults.Value(target))
	}

	switch target {
	case domain.FieldTypeString:
		return c.toString(value)
	case domain.FieldTypeNumber:
		return c.toNumber(value)
	case domain.FieldTypeBoolean:
		return c.toBoolean(value)
	case domain.FieldTypeDate:
		return c.toDate(value)
	case domain.FieldTypeColor:
		return c.toColor(value)
	case domain.FieldTypeFormattedText:
		return c.toFormattedText(value)
	case domain.FieldTypeImage:
		return c.toAsset(value, domain.FieldTypeImage)
	case domain.FieldTypeFile:
		return c.toAsset(value, domain.FieldTypeFile)
	case domain.FieldTypeLink:
		return c.toLink(value)
	case domain.FieldTypeEnum:
		return c.toEnum(value)
	case domain.FieldTypeCollectionReference:
		return c.toCollectionReference(value)
	case domain.FieldTypeMultiCollectionReference:
		return c.toMultiCollectionReference(value)
	case domain.FieldTypeObject:
		return c.toObject(value)
	case domain.FieldTypeArray:
		return c.toArray(value)
	default:
		return Result{Success: false, Value: nil, Error: "unknown field type"}
	}
}

func succeed(value any) Result {
	return Result{Success: true, Value: value}
}

func (c *Converter) failure(target domain.FieldType, message string) Result {
	return Result{Success: false, Value: c.defaults.Value(target), Error: message}
}
