package sitegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bare domain gets scheme and slash", "example.com", "https://example.com/"},
		{"keeps existing https", "https://example.com/path", "https://example.com/path"},
		{"keeps existing http", "http://example.com", "http://example.com/"},
		{"scheme is case insensitive", "HTTPS://Example.com", "https://Example.com/"},
		{"trims surrounding whitespace", "  example.com/about  ", "https://example.com/about"},
		{"preserves query and fragment", "example.com/p?a=1#top", "https://example.com/p?a=1#top"},
		{"rejects garbage", "ht tp://bad url", ""},
		{"rejects scheme without host", "https://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"https://example.com/path?q=1",
		"linkedin.com/in/somebody",
		"http://localhost:8080",
	}

	for _, in := range inputs {
		once := NormalizeURL(in)
		twice := NormalizeURL(once)
		assert.Equal(t, once, twice, "normalizing %q a second time changed the result", in)
	}
}
