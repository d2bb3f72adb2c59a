package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

var (
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbColorRe = regexp.MustCompile(`^rgb\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\)$`)
)

// namedColors resolves common English and Portuguese colour names to hex.
var namedColors = map[string]string{
	"red":      "#FF0000",
	"vermelho": "#FF0000",
	"green":    "#008000",
	"verde":    "#008000",
	"blue":     "#0000FF",
	"azul":     "#0000FF",
	"black":    "#000000",
	"preto":    "#000000",
	"white":    "#FFFFFF",
	"branco":   "#FFFFFF",
	"yellow":   "#FFFF00",
	"amarelo":  "#FFFF00",
	"orange":   "#FFA500",
	"laranja":  "#FFA500",
	"purple":   "#800080",
	"roxo":     "#800080",
	"pink":     "#FFC0CB",
	"rosa":     "#FFC0CB",
	"gray":     "#808080",
	"grey":     "#808080",
	"cinza":    "#808080",
	"brown":    "#A52A2A",
	"marrom":   "#A52A2A",
	"cyan":     "#00FFFF",
	"ciano":    "#00FFFF",
	"magenta":  "#FF00FF",
	"silver":   "#C0C0C0",
	"prata":    "#C0C0C0",
	"gold":     "#FFD700",
	"dourado":  "#FFD700",
}

// toColor accepts #RGB, #RRGGBB and rgb(r,g,b) syntax unchanged, and
// resolves the bilingual named-colour table. Anything else fails to the
// default colour.
func (c *Converter) toColor(value any) Result {
	s, ok := value.(string)
	if !ok {
		return c.failure(domain.FieldTypeColor, fmt.Sprintf("cannot convert %T to color", value))
	}

	trimmed := strings.TrimSpace(s)
	if hexColorRe.MatchString(trimmed) || rgbColorRe.MatchString(trimmed) {
		return succeed(trimmed)
	}
	if hex, found := namedColors[strings.ToLower(trimmed)]; found {
		return succeed(hex)
	}
	return c.failure(domain.FieldTypeColor, fmt.Sprintf("%q is not a recognised color", s))
}
