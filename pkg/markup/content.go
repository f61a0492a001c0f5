package markup

import (
	"fmt"
	"reflect"
)

// Kind is the content type discriminator.
type Kind uint8

const (
	KindSequence Kind = iota // Grouping without markup
	KindText                 // Character data, escaped on render
	KindRaw                  // Pre-escaped markup (trusted)
	KindElement              // <div>, <p>, etc.
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "Sequence"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Content is a piece of markup. The zero value is an empty sequence.
//
// Content is immutable. Every operation that changes a tree returns a new
// value, so a Content can be shared and rendered concurrently.
type Content struct {
	kind  Kind
	text  string    // KindText, KindRaw
	tag   string    // KindElement
	attrs []Attr    // KindElement
	items []Content // KindElement children, KindSequence members
}

// Node is implemented by values that convert into Content.
//
// Functions taking nodes treat a nil interface and a typed nil (a nil
// pointer, func, map or slice) the same way: the node is absent. Use Maybe
// to turn an optional *T into Content explicitly.
type Node interface {
	Content() Content
}

// Content implements Node.
func (c Content) Content() Content { return c }

// Apply implements Component by adding c as a child.
func (c Content) Apply(b *Builder) { b.AddChild(c) }

// Kind returns the content kind.
func (c Content) Kind() Kind { return c.kind }

// Text returns the payload of a Text or Raw node and "" for other kinds.
func (c Content) Text() string { return c.text }

// Tag returns the tag name of an element and "" for other kinds.
func (c Content) Tag() string { return c.tag }

// NumAttrs returns the number of attributes of an element.
func (c Content) NumAttrs() int { return len(c.attrs) }

// Attr returns the i-th attribute of an element.
func (c Content) Attr(i int) Attr { return c.attrs[i] }

// Attrs returns a copy of the attribute set of an element.
func (c Content) Attrs() []Attr {
	if len(c.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(c.attrs))
	copy(out, c.attrs)
	return out
}

// Len returns the number of children of an element or members of a sequence.
func (c Content) Len() int { return len(c.items) }

// Item returns the i-th child of an element or member of a sequence.
func (c Content) Item(i int) Content { return c.items[i] }

// Children returns the child content of an element as a sequence.
// For a sequence it returns c itself; for leaves it returns an empty sequence.
func (c Content) Children() Content {
	switch c.kind {
	case KindElement:
		return Content{kind: KindSequence, items: c.items}
	case KindSequence:
		return c
	default:
		return Content{}
	}
}

// IsEmpty reports whether c renders to nothing, that is whether it is a
// sequence with no leaves or elements anywhere below it. A Text node with an
// empty string is not empty.
func (c Content) IsEmpty() bool {
	if c.kind != KindSequence {
		return false
	}
	for _, item := range c.items {
		if !item.IsEmpty() {
			return false
		}
	}
	return true
}

// With returns a copy of an element with the given parts appended to its
// attributes and children. The receiver is left untouched. For other kinds
// With returns c unchanged.
func (c Content) With(parts ...Component) Content {
	if c.kind != KindElement {
		return c
	}
	b := &Builder{
		tag:      c.tag,
		attrs:    append([]Attr(nil), c.attrs...),
		children: append([]Content(nil), c.items...),
	}
	for _, p := range parts {
		if !isNil(p) {
			p.Apply(b)
		}
	}
	return b.Build()
}

// GoString makes debugging output readable.
func (c Content) GoString() string {
	switch c.kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", c.text)
	case KindRaw:
		return fmt.Sprintf("Raw(%q)", c.text)
	case KindElement:
		return fmt.Sprintf("Element(%q, %d attrs, %d children)", c.tag, len(c.attrs), len(c.items))
	default:
		return fmt.Sprintf("Sequence(%d items)", len(c.items))
	}
}

// Text creates a text node. Its content is escaped on render.
func Text(s string) Content {
	return Content{kind: KindText, text: s}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) Content {
	return Text(fmt.Sprintf(format, args...))
}

// Texts creates a sequence with one text node per string.
func Texts(ss ...string) Content {
	items := make([]Content, 0, len(ss))
	for _, s := range ss {
		items = append(items, Text(s))
	}
	return Content{kind: KindSequence, items: items}
}

// Raw creates an unescaped markup node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) Content {
	return Content{kind: KindRaw, text: html}
}

// Rawf creates a formatted raw markup node. The arguments are not escaped.
func Rawf(format string, args ...any) Content {
	return Raw(fmt.Sprintf(format, args...))
}

// Sequence groups nodes without a wrapper element. Nil nodes, typed nils
// included, are dropped and nested sequences are flattened.
func Sequence(nodes ...Node) Content {
	items := make([]Content, 0, len(nodes))
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		items = appendFlat(items, n.Content())
	}
	return Content{kind: KindSequence, items: items}
}

// appendFlat appends c to items, splicing in the members of sequences.
func appendFlat(items []Content, c Content) []Content {
	if c.kind != KindSequence {
		return append(items, c)
	}
	for _, item := range c.items {
		items = appendFlat(items, item)
	}
	return items
}

// isNil reports whether v is nil or a nil value of a nillable type. Calling
// a method on such a value through an interface would panic.
func isNil(v any) bool {
	switch v.(type) {
	case nil:
		return true
	case Content, Attr:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
