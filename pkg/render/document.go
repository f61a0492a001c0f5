package render

import (
	"io"

	"github.com/vango-dev/el/pkg/markup"
)

// Document is a content tree marked for document rendering: the output
// starts with the doctype declaration, followed by the normal rendering of
// the tree. No <html>, <head> or <body> skeleton is added.
type Document struct {
	root markup.Content
}

// IntoDocument marks n for document rendering. A nil node yields a
// document holding only the doctype.
//
// A Document is not a markup.Node: it cannot be nested in another tree or
// passed to Render. Write it with Document.Render or Document.RenderToString.
func IntoDocument(n markup.Node) Document {
	return Document{root: markup.If(true, n)}
}

// Root returns the content tree of the document.
func (d Document) Root() markup.Content {
	return d.root
}

// Render streams the document to w.
func (d Document) Render(w io.Writer) error {
	return RenderMode(w, d.root, ModeDocument)
}

// RenderToString renders the document and returns the HTML.
func (d Document) RenderToString() (string, error) {
	return renderToString(d.root, ModeDocument)
}
