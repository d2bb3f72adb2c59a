package postgrest

import (
	"sort"
	"strings"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// pkMarker is the tag PostgREST embeds in a property description when
// the column is part of the table's primary key.
const pkMarker = "<pk/>"

// openAPIDocument is the subset of the OpenAPI document PostgREST
// serves at the API root that schema discovery needs.
type openAPIDocument struct {
	Definitions map[string]tableDefinition `json:"definitions"`
}

// tableDefinition describes one exposed table or view.
type tableDefinition struct {
	// Required lists the columns that are NOT NULL.
	Required []string `json:"required"`

	Properties map[string]columnProperty `json:"properties"`
}

// columnProperty describes one column. Format carries the Postgres
// type name (int4, timestamptz, ...); Type is the JSON-schema type and
// only used when Format is absent.
type columnProperty struct {
	Type        string `json:"type"`
	Format      string `json:"format"`
	Description string `json:"description"`
}

// tables returns the exposed table names, sorted.
func (d *openAPIDocument) tables() []string {
	names := make([]string, 0, len(d.Definitions))
	for name := range d.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// columns converts a table definition into column descriptors. JSON
// objects carry no declaration order, so columns come back sorted by
// name rather than by ordinal position.
func (t *tableDefinition) columns() []domain.ColumnDescriptor {
	required := make(map[string]struct{}, len(t.Required))
	for _, name := range t.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(t.Properties))
	for name := range t.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]domain.ColumnDescriptor, 0, len(names))
	for _, name := range names {
		prop := t.Properties[name]
		sourceType := prop.Format
		if sourceType == "" {
			sourceType = prop.Type
		}
		_, notNull := required[name]
		columns = append(columns, domain.ColumnDescriptor{
			Name:       name,
			SourceType: sourceType,
			Nullable:   !notNull,
			PrimaryKey: strings.Contains(prop.Description, pkMarker),
		})
	}
	return columns
}
