package render

import "unicode/utf8"

// The rules around what is a valid name are complicated. We're conservative
// for tag names so the output parses the same way in every context, and
// follow the HTML attribute-name syntax for attributes so framework attributes
// (aria-*, xlink:href, @click) keep working.

// ValidTagName reports whether name is usable as an element tag name: an
// ASCII letter followed by ASCII letters, digits, '-', '_', '.' or ':'.
func ValidTagName(name string) bool {
	if name == "" || !isASCIIAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if isASCIIAlpha(c) || isASCIIDigit(c) {
			continue
		}
		switch c {
		case '-', '_', '.', ':':
			continue
		}
		return false
	}
	return true
}

// ValidAttrName reports whether name is a valid HTML attribute name: not
// empty, valid UTF-8, and free of whitespace, control characters, quotes,
// '=', '<', '>' and '/'.
func ValidAttrName(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}
	for _, r := range name {
		switch {
		case r < 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			return false
		case r == ' ', r == '"', r == '\'', r == '=', r == '<', r == '>', r == '/':
			return false
		case r >= 0xfdd0 && r <= 0xfdef, r&0xfffe == 0xfffe:
			return false
		}
	}
	return true
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
