package markup

import "strings"

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
// The comparison is ASCII case-insensitive, like HTML tag names.
func IsVoidElement(tag string) bool {
	if voidElements[tag] {
		return true
	}
	return voidElements[strings.ToLower(tag)]
}

// VoidElements returns the void element tag names in alphabetical order.
func VoidElements() []string {
	return []string{
		"area", "base", "br", "col", "embed", "hr", "img",
		"input", "link", "meta", "param", "source", "track", "wbr",
	}
}
