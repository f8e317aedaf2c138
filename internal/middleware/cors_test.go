package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{name: "already canonical", origin: "https://example.com", want: "https://example.com"},
		{name: "trims whitespace", origin: "  https://example.com  ", want: "https://example.com"},
		{name: "schemeless gets https", origin: "example.com", want: "https://example.com"},
		{name: "http scheme preserved", origin: "http://localhost:3000", want: "http://localhost:3000"},
		{name: "trailing slash stripped", origin: "https://example.com/", want: "https://example.com"},
		{name: "schemeless with trailing slash", origin: "example.com/", want: "https://example.com"},
		{name: "wildcard passes through", origin: "*", want: "*"},
		{name: "empty stays empty", origin: "", want: ""},
		{name: "whitespace only stays empty", origin: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOrigin(tt.origin)
			assert.Equal(t, tt.want, got)
			// Normalization must be idempotent
			assert.Equal(t, got, NormalizeOrigin(got))
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestResolveAllowOrigin(t *testing.T) {
	tests := []struct {
		name          string
		requestOrigin string
		allowed       *string
		want          string
	}{
		{
			name:          "nil config denies",
			requestOrigin: "https://example.com",
			allowed:       nil,
			want:          "",
		},
		{
			name:          "wildcard config allows any origin",
			requestOrigin: "https://example.com",
			allowed:       strPtr("*"),
			want:          "*",
		},
		{
			name:          "exact match reflects request origin",
			requestOrigin: "https://example.com",
			allowed:       strPtr("https://example.com"),
			want:          "https://example.com",
		},
		{
			name:          "schemeless candidate matches https origin",
			requestOrigin: "https://example.com",
			allowed:       strPtr("example.com"),
			want:          "https://example.com",
		},
		{
			name:          "candidate trailing slash ignored",
			requestOrigin: "https://example.com",
			allowed:       strPtr("https://example.com/"),
			want:          "https://example.com",
		},
		{
			name:          "whitespace around candidates ignored",
			requestOrigin: "https://app.example.com",
			allowed:       strPtr(" example.com , https://app.example.com "),
			want:          "https://app.example.com",
		},
		{
			name:          "wildcard inside list reflects request origin",
			requestOrigin: "https://anything.io",
			allowed:       strPtr("example.com, *"),
			want:          "https://anything.io",
		},
		{
			name:          "no match denies",
			requestOrigin: "https://evil.com",
			allowed:       strPtr("example.com, https://app.example.com"),
			want:          "",
		},
		{
			name:          "empty request origin never matches candidates",
			requestOrigin: "",
			allowed:       strPtr("example.com"),
			want:          "",
		},
		{
			name:          "empty candidates are skipped",
			requestOrigin: "https://example.com",
			allowed:       strPtr(",, ,example.com"),
			want:          "https://example.com",
		},
		{
			name:          "empty config string denies",
			requestOrigin: "https://example.com",
			allowed:       strPtr(""),
			want:          "",
		},
		{
			name:          "http origin does not match https candidate",
			requestOrigin: "http://example.com",
			allowed:       strPtr("example.com"),
			want:          "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAllowOrigin(tt.requestOrigin, tt.allowed)
			assert.Equal(t, tt.want, got)
		})
	}
}
