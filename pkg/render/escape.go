package render

import (
	"io"
	"strings"
	"unicode/utf8"
)

// htmlEscaper escapes text for safe inclusion in HTML content and quoted
// attribute values.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// replacementChar stands in for each run of invalid UTF-8 bytes.
const replacementChar = "\uFFFD"

// validUTF8 returns s with every run of invalid UTF-8 bytes replaced by
// U+FFFD.
func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, replacementChar)
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(validUTF8(s))
}

// writeEscaped streams the escaped form of s to w. Invalid UTF-8 is written
// as U+FFFD, so the output is always valid UTF-8.
func writeEscaped(w io.Writer, s string) error {
	s = validUTF8(s)
	if strings.IndexAny(s, `&<>"'`) < 0 {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := htmlEscaper.WriteString(w, s)
	return err
}

// EscapeText returns s escaped for use as HTML text or a quoted attribute
// value. Invalid UTF-8 becomes U+FFFD.
func EscapeText(s string) string {
	return escapeHTML(s)
}
