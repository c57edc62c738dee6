package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Acme Recruitment",
			expected: "acme-recruitment",
		},
		{
			name:     "punctuation collapses",
			input:    "Smith & Jones, Ltd.",
			expected: "smith-jones-ltd",
		},
		{
			name:     "diacritics folded",
			input:    "Société Générale Search",
			expected: "societe-generale-search",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    "  --Acme--  ",
			expected: "acme",
		},
		{
			name:     "digits preserved",
			input:    "Top 10 Talent",
			expected: "top-10-talent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestExtractWebsiteDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "full url", input: "https://www.acme.com/about", expected: "acme.com"},
		{name: "bare host", input: "acme.co.uk", expected: "acme.co.uk"},
		{name: "uppercase host", input: "https://ACME.COM", expected: "acme.com"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractWebsiteDomain(tt.input))
		})
	}
}

func TestExtractEmailDomain(t *testing.T) {
	assert.Equal(t, "acme.com", ExtractEmailDomain("jane@acme.com"))
	assert.Equal(t, "acme.com", ExtractEmailDomain("jane@ACME.com"))
	assert.Equal(t, "", ExtractEmailDomain("not-an-email"))
	assert.Equal(t, "", ExtractEmailDomain("trailing@"))
}
