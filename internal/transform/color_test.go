package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// TestConvert_Color tests hex/rgb passthrough and named colour resolution
func TestConvert_Color(t *testing.T) {
	conv := New(nil)

	tests := []struct {
		name     string
		input    any
		success  bool
		expected string
	}{
		{
			name:     "six digit hex passes unchanged",
			input:    "#FF0000",
			success:  true,
			expected: "#FF0000",
		},
		{
			name:     "three digit hex passes unchanged",
			input:    "#0f0",
			success:  true,
			expected: "#0f0",
		},
		{
			name:     "rgb syntax passes unchanged",
			input:    "rgb(255, 0, 0)",
			success:  true,
			expected: "rgb(255, 0, 0)",
		},
		{
			name:     "rgb without spaces passes",
			input:    "rgb(0,128,255)",
			success:  true,
			expected: "rgb(0,128,255)",
		},
		{
			name:     "english name resolves",
			input:    "red",
			success:  true,
			expected: "#FF0000",
		},
		{
			name:     "portuguese name resolves",
			input:    "vermelho",
			success:  true,
			expected: "#FF0000",
		},
		{
			name:     "verde resolves",
			input:    "verde",
			success:  true,
			expected: "#008000",
		},
		{
			name:     "azul resolves",
			input:    "azul",
			success:  true,
			expected: "#0000FF",
		},
		{
			name:     "name lookup is case insensitive",
			input:    "Branco",
			success:  true,
			expected: "#FFFFFF",
		},
		{
			name:     "padded input is trimmed",
			input:    "  #ABCDEF  ",
			success:  true,
			expected: "#ABCDEF",
		},
		{
			name:    "unknown name fails",
			input:   "notacolor",
			success: false,
		},
		{
			name:    "malformed hex fails",
			input:   "#12345",
			success: false,
		},
		{
			name:    "hex without hash fails",
			input:   "FF0000",
			success: false,
		},
		{
			name:    "number fails",
			input:   float64(0xFF0000),
			success: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := conv.Convert(tt.input, domain.FieldTypeColor)
			assert.Equal(t, tt.success, result.Success)
			if tt.success {
				assert.Equal(t, tt.expected, result.Value)
			} else {
				assert.Equal(t, "#000000", result.Value)
				assert.NotEmpty(t, result.Error)
			}
		})
	}
}

// TestNamedColors_WellFormed tests every named colour resolves to valid hex
func TestNamedColors_WellFormed(t *testing.T) {
	for name, hex := range namedColors {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, hex, "colour %q", name)
	}
}
