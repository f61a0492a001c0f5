package render

import (
	"strings"
	"testing"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "ampersand",
			input:    "Tom & Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "less than",
			input:    "a < b",
			expected: "a &lt; b",
		},
		{
			name:     "greater than",
			input:    "a > b",
			expected: "a &gt; b",
		},
		{
			name:     "double quote",
			input:    `say "hello"`,
			expected: "say &quot;hello&quot;",
		},
		{
			name:     "single quote",
			input:    "it's fine",
			expected: "it&#39;s fine",
		},
		{
			name:     "already escaped is escaped again",
			input:    "&amp;",
			expected: "&amp;amp;",
		},
		{
			name:     "multiple special chars",
			input:    `<a href="test?a=1&b=2">link</a>`,
			expected: `&lt;a href=&quot;test?a=1&amp;b=2&quot;&gt;link&lt;/a&gt;`,
		},
		{
			name:     "invalid utf-8 replaced",
			input:    "\xff<\xc3",
			expected: "\uFFFD&lt;\uFFFD",
		},
		{
			name:     "unicode preserved",
			input:    "Hello 世界 🌍",
			expected: "Hello 世界 🌍",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := EscapeText(tt.input); result != tt.expected {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
			var b strings.Builder
			if err := writeEscaped(&b, tt.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.String() != tt.expected {
				t.Errorf("writeEscaped(%q) = %q, want %q", tt.input, b.String(), tt.expected)
			}
		})
	}
}

func TestEscapedOutputHasNoSpecialChars(t *testing.T) {
	inputs := []string{`<>&"'`, `'"'"`, "<<<>>>", "a&b<c>d\"e'f"}
	for _, in := range inputs {
		out := EscapeText(in)
		// strip the entities we produce, then nothing special may remain
		stripped := strings.NewReplacer("&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&#39;", "").Replace(out)
		if strings.ContainsAny(stripped, `<>&"'`) {
			t.Errorf("EscapeText(%q) = %q leaves unescaped characters", in, out)
		}
	}
}
