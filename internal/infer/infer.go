// Package infer guesses the destination field type for a source column.
//
// Inference is a pure, total function over an ordered rule table: name
// rules first (a text column named website_url is semantically a link even
// though its storage type says otherwise), then source-type rules, then a
// string fallback. The tables are exported as data so individual rules are
// testable and extensible without touching control flow.
package infer

import (
	"strings"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// MatchKind selects how a rule token is compared against a name or type.
type MatchKind string

const (
	// MatchSubstring matches when the token occurs anywhere.
	MatchSubstring MatchKind = "substring"

	// MatchPrefix matches when the subject starts with the token.
	MatchPrefix MatchKind = "prefix"

	// MatchSuffix matches when the subject ends with the token.
	MatchSuffix MatchKind = "suffix"

	// MatchExact matches the whole subject.
	MatchExact MatchKind = "exact"
)

// Rule binds one token and match kind to a destination field type.
type Rule struct {
	Token string
	Kind  MatchKind
	Type  domain.FieldType
}

// Matches reports whether the rule fires for the given subject. The subject
// must already be lowercased.
func (r Rule) Matches(subject string) bool {
	switch r.Kind {
	case MatchSubstring:
		return strings.Contains(subject, r.Token)
	case MatchPrefix:
		return strings.HasPrefix(subject, r.Token)
	case MatchSuffix:
		return strings.HasSuffix(subject, r.Token)
	case MatchExact:
		return subject == r.Token
	default:
		return false
	}
}

// NameRules is the ordered table of column-name heuristics. First match
// wins. Multi-reference rules precede singular reference rules so plural
// names like "references" remain reachable.
var NameRules = []Rule{
	{Token: "color", Kind: MatchSubstring, Type: domain.FieldTypeColor},
	{Token: "cor", Kind: MatchSubstring, Type: domain.FieldTypeColor},
	{Token: "rgb", Kind: MatchSuffix, Type: domain.FieldTypeColor},
	{Token: "hex", Kind: MatchSuffix, Type: domain.FieldTypeColor},

	{Token: "url", Kind: MatchSubstring, Type: domain.FieldTypeLink},
	{Token: "link", Kind: MatchSubstring, Type: domain.FieldTypeLink},
	{Token: "website", Kind: MatchSubstring, Type: domain.FieldTypeLink},
	{Token: "site", Kind: MatchSubstring, Type: domain.FieldTypeLink},

	{Token: "image", Kind: MatchSubstring, Type: domain.FieldTypeImage},
	{Token: "imagem", Kind: MatchSubstring, Type: domain.FieldTypeImage},
	{Token: "photo", Kind: MatchSubstring, Type: domain.FieldTypeImage},
	{Token: "foto", Kind: MatchSubstring, Type: domain.FieldTypeImage},
	{Token: "picture", Kind: MatchSubstring, Type: domain.FieldTypeImage},
	{Token: "img", Kind: MatchSuffix, Type: domain.FieldTypeImage},

	{Token: "file", Kind: MatchSubstring, Type: domain.FieldTypeFile},
	{Token: "arquivo", Kind: MatchSubstring, Type: domain.FieldTypeFile},
	{Token: "document", Kind: MatchSubstring, Type: domain.FieldTypeFile},
	{Token: "pdf", Kind: MatchSuffix, Type: domain.FieldTypeFile},
	{Token: "doc", Kind: MatchSuffix, Type: domain.FieldTypeFile},

	{Token: "html", Kind: MatchSubstring, Type: domain.FieldTypeFormattedText},
	{Token: "formatted", Kind: MatchSubstring, Type: domain.FieldTypeFormattedText},
	{Token: "rich_text", Kind: MatchSubstring, Type: domain.FieldTypeFormattedText},
	{Token: "rich_content", Kind: MatchSubstring, Type: domain.FieldTypeFormattedText},

	{Token: "references", Kind: MatchSubstring, Type: domain.FieldTypeMultiCollectionReference},
	{Token: "refs", Kind: MatchSubstring, Type: domain.FieldTypeMultiCollectionReference},
	{Token: "ids", Kind: MatchSuffix, Type: domain.FieldTypeMultiCollectionReference},

	{Token: "reference", Kind: MatchSubstring, Type: domain.FieldTypeCollectionReference},
	{Token: "referencia", Kind: MatchSubstring, Type: domain.FieldTypeCollectionReference},
	{Token: "ref_", Kind: MatchPrefix, Type: domain.FieldTypeCollectionReference},
	{Token: "_ref", Kind: MatchSuffix, Type: domain.FieldTypeCollectionReference},
	{Token: "_id", Kind: MatchSuffix, Type: domain.FieldTypeCollectionReference},
}

// TypeRules is the ordered table of source-type heuristics, applied when no
// name rule fires. Tokens cover both wire spellings a Postgres-backed
// source emits: driver names (int4, timestamptz) and information_schema
// names (integer, timestamp with time zone, USER-DEFINED).
var TypeRules = []Rule{
	{Token: "int", Kind: MatchPrefix, Type: domain.FieldTypeNumber},
	{Token: "bigint", Kind: MatchExact, Type: domain.FieldTypeNumber},
	{Token: "smallint", Kind: MatchExact, Type: domain.FieldTypeNumber},
	{Token: "float", Kind: MatchPrefix, Type: domain.FieldTypeNumber},
	{Token: "serial", Kind: MatchPrefix, Type: domain.FieldTypeNumber},
	{Token: "decimal", Kind: MatchExact, Type: domain.FieldTypeNumber},
	{Token: "numeric", Kind: MatchExact, Type: domain.FieldTypeNumber},
	{Token: "real", Kind: MatchExact, Type: domain.FieldTypeNumber},
	{Token: "double precision", Kind: MatchExact, Type: domain.FieldTypeNumber},
	{Token: "double", Kind: MatchExact, Type: domain.FieldTypeNumber},
	{Token: "money", Kind: MatchExact, Type: domain.FieldTypeNumber},

	{Token: "bool", Kind: MatchPrefix, Type: domain.FieldTypeBoolean},

	{Token: "timestamp", Kind: MatchPrefix, Type: domain.FieldTypeDate},
	{Token: "time", Kind: MatchPrefix, Type: domain.FieldTypeDate},
	{Token: "date", Kind: MatchPrefix, Type: domain.FieldTypeDate},
	{Token: "datetime", Kind: MatchExact, Type: domain.FieldTypeDate},

	{Token: "enum", Kind: MatchExact, Type: domain.FieldTypeEnum},
	{Token: "user-defined", Kind: MatchExact, Type: domain.FieldTypeEnum},
}

// Infer produces the best-guess destination type for a column. Pure and
// total: every input yields a valid public field type.
func Infer(col domain.ColumnDescriptor) domain.FieldType {
	name := strings.ToLower(strings.TrimSpace(col.Name))
	for _, rule := range NameRules {
		if rule.Matches(name) {
			return rule.Type
		}
	}

	sourceType := strings.ToLower(strings.TrimSpace(col.SourceType))
	for _, rule := range TypeRules {
		if rule.Matches(sourceType) {
			return rule.Type
		}
	}

	return domain.FieldTypeString
}
