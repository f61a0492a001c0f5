package render

import (
	"io"
	"strings"

	"github.com/vango-dev/el/pkg/markup"
)

// Doctype is written before the root of a document render.
const Doctype = "<!DOCTYPE html>"

// Mode selects between fragment and document output.
type Mode uint8

const (
	ModeFragment Mode = iota // Tree only
	ModeDocument             // Doctype, then the tree
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeFragment:
		return "fragment"
	case ModeDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Render streams the fragment rendering of n to w.
func Render(w io.Writer, n markup.Node) error {
	return RenderMode(w, n, ModeFragment)
}

// RenderToString renders n as a fragment and returns the HTML.
func RenderToString(n markup.Node) (string, error) {
	return renderToString(n, ModeFragment)
}

// RenderMode streams n to w in the given mode. The first error aborts the
// traversal and is returned as a *Error.
func RenderMode(w io.Writer, n markup.Node, mode Mode) error {
	if mode == ModeDocument {
		if _, err := io.WriteString(w, Doctype); err != nil {
			return writeError(err)
		}
	}
	return renderContent(w, markup.If(true, n))
}

func renderToString(n markup.Node, mode Mode) (string, error) {
	var buf strings.Builder
	if err := RenderMode(&buf, n, mode); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderContent dispatches rendering based on content kind. Anything that is
// not text, raw or an element renders as a sequence of its members.
func renderContent(w io.Writer, c markup.Content) error {
	switch c.Kind() {
	case markup.KindText:
		if err := writeEscaped(w, c.Text()); err != nil {
			return writeError(err)
		}
		return nil
	case markup.KindRaw:
		return writeString(w, c.Text())
	case markup.KindElement:
		return renderElement(w, c)
	default:
		return renderChildren(w, c)
	}
}

// renderChildren renders the children of an element or the members of a
// sequence, in order, without separators.
func renderChildren(w io.Writer, c markup.Content) error {
	for i := 0; i < c.Len(); i++ {
		child := c.Item(i)
		if err := renderContent(w, child); err != nil {
			if re, ok := err.(*Error); ok {
				return re.at(i, child.Tag())
			}
			return err
		}
	}
	return nil
}

// validateElement checks the element itself, not its descendants.
func validateElement(el markup.Content) error {
	tag := el.Tag()
	if !ValidTagName(tag) {
		return structuralError(ErrInvalidTagName, tag)
	}
	for i := 0; i < el.NumAttrs(); i++ {
		if name := el.Attr(i).Name; !ValidAttrName(name) {
			return structuralError(ErrInvalidAttrName, name)
		}
	}
	if markup.IsVoidElement(tag) && !el.Children().IsEmpty() {
		return structuralError(ErrVoidContent, tag)
	}
	return nil
}

// renderElement renders an element with its attributes and children.
func renderElement(w io.Writer, el markup.Content) error {
	if err := validateElement(el); err != nil {
		return err
	}
	tag := el.Tag()

	// Opening tag
	if err := writeString(w, "<"); err != nil {
		return err
	}
	if err := writeString(w, tag); err != nil {
		return err
	}
	if err := renderAttributes(w, el); err != nil {
		return err
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}

	// Void elements have neither children nor a closing tag
	if markup.IsVoidElement(tag) {
		return nil
	}

	if err := renderChildren(w, el); err != nil {
		return err
	}

	// Closing tag
	if err := writeString(w, "</"); err != nil {
		return err
	}
	if err := writeString(w, tag); err != nil {
		return err
	}
	return writeString(w, ">")
}

// renderAttributes writes the attribute set in insertion order.
func renderAttributes(w io.Writer, el markup.Content) error {
	for i := 0; i < el.NumAttrs(); i++ {
		a := el.Attr(i)
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := writeString(w, a.Name); err != nil {
			return err
		}
		if !a.HasValue() {
			continue
		}
		if err := writeString(w, `="`); err != nil {
			return err
		}
		if err := writeEscaped(w, a.Value); err != nil {
			return writeError(err)
		}
		if err := writeString(w, `"`); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return writeError(err)
	}
	return nil
}
