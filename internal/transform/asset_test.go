package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

// TestConvert_Image tests image conversion rules
func TestConvert_Image(t *testing.T) {
	conv := New(nil)

	tests := []struct {
		name     string
		input    any
		success  bool
		expected any
	}{
		{
			name:     "url string is wrapped",
			input:    "https://cdn.example.com/cover.png",
			success:  true,
			expected: map[string]any{"url": "https://cdn.example.com/cover.png"},
		},
		{
			name:     "object with url passes whole",
			input:    map[string]any{"url": "https://cdn.example.com/a.png", "alt": "cover"},
			success:  true,
			expected: map[string]any{"url": "https://cdn.example.com/a.png", "alt": "cover"},
		},
		{
			name:    "object without url fails",
			input:   map[string]any{"src": "https://cdn.example.com/a.png"},
			success: false,
		},
		{
			name:    "plain text fails",
			input:   "not a url",
			success: false,
		},
		{
			name:    "scheme-less string fails",
			input:   "cdn.example.com/a.png",
			success: false,
		},
		{
			name:    "number fails",
			input:   float64(1),
			success: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := conv.Convert(tt.input, domain.FieldTypeImage)
			assert.Equal(t, tt.success, result.Success)
			if tt.success {
				assert.Equal(t, tt.expected, result.Value)
			} else {
				assert.Nil(t, result.Value)
				assert.NotEmpty(t, result.Error)
			}
		})
	}
}

// TestConvert_File tests file conversion shares the asset rules
func TestConvert_File(t *testing.T) {
	conv := New(nil)

	ok := conv.Convert("https://example.com/report.pdf", domain.FieldTypeFile)
	require.True(t, ok.Success)
	assert.Equal(t, map[string]any{"url": "https://example.com/report.pdf"}, ok.Value)

	bad := conv.Convert("not a file", domain.FieldTypeFile)
	assert.False(t, bad.Success)
	assert.Nil(t, bad.Value)
}

// TestConvert_Link tests link tolerance rules
func TestConvert_Link(t *testing.T) {
	conv := New(nil)

	tests := []struct {
		name     string
		input    any
		success  bool
		expected string
	}{
		{
			name:     "absolute url passes",
			input:    "https://example.com/page",
			success:  true,
			expected: "https://example.com/page",
		},
		{
			name:     "scheme-less url gets https",
			input:    "example.com/page",
			success:  true,
			expected: "https://example.com/page",
		},
		{
			name:     "free text returns original",
			input:    "see the about page",
			success:  true,
			expected: "see the about page",
		},
		{
			name:     "object url extracted",
			input:    map[string]any{"url": "https://example.com"},
			success:  true,
			expected: "https://example.com",
		},
		{
			name:     "object href extracted",
			input:    map[string]any{"href": "https://example.com/h"},
			success:  true,
			expected: "https://example.com/h",
		},
		{
			name:    "object without url or href fails",
			input:   map[string]any{"text": "click"},
			success: false,
		},
		{
			name:     "mail scheme passes",
			input:    "mailto:team@example.com",
			success:  true,
			expected: "mailto:team@example.com",
		},
		{
			name:    "number fails",
			input:   float64(5),
			success: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := conv.Convert(tt.input, domain.FieldTypeLink)
			assert.Equal(t, tt.success, result.Success)
			if tt.success {
				assert.Equal(t, tt.expected, result.Value)
			} else {
				assert.Equal(t, "", result.Value)
				assert.NotEmpty(t, result.Error)
			}
		})
	}
}

// TestIsValidURL tests the URL acceptance rules
func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{
			name:  "https with host",
			input: "https://example.com",
			valid: true,
		},
		{
			name:  "http with host and path",
			input: "http://example.com/a/b",
			valid: true,
		},
		{
			name:  "https without host",
			input: "https://",
			valid: false,
		},
		{
			name:  "no scheme",
			input: "example.com",
			valid: false,
		},
		{
			name:  "empty",
			input: "",
			valid: false,
		},
		{
			name:  "other scheme accepted",
			input: "ftp://files.example.com",
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidURL(tt.input))
		})
	}
}
