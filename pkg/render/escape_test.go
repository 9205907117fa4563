package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"tags", "<b>", "&lt;b&gt;"},
		{"quotes", `"it's"`, "&quot;it&#39;s&quot;"},
		{"newline kept", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeHTML(tt.input))
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "signup", "signup"},
		{"quote", `a"b`, "a&quot;b"},
		{"whitespace", "a\nb\tc\r", "a&#10;b&#9;c&#13;"},
		{"ampersand first", "&lt;", "&amp;lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeAttr(tt.input))
		})
	}
}
