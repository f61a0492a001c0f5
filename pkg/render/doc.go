// Package render serializes markup trees to HTML.
//
// The renderer walks a markup.Content tree once, depth-first, and writes
// the output incrementally to an io.Writer. It handles:
//
//   - Text and attribute-value escaping (XSS prevention)
//   - Void elements (input, br, img, etc.), which never get a closing tag
//   - Boolean attributes, written as a bare name
//   - Tag and attribute name validation
//   - Whole-document output with a leading <!DOCTYPE html>
//
// # Basic Usage
//
// To render a tree to a string:
//
//	html, err := render.RenderToString(node)
//
// To stream it to a writer:
//
//	err := render.Render(w, node)
//
// # Documents
//
// IntoDocument marks a tree for document rendering. It adds the doctype and
// nothing else; the <html>, <head> and <body> elements are up to the caller.
// PageData builds a conventional page skeleton when one is wanted.
//
//	doc := render.IntoDocument(El("html", El("body", Text("hi"))))
//	err := doc.Render(w)
//
// # Errors
//
// Rendering fails with a *Error when the tree contains an invalid tag or
// attribute name or a void element with children, or when the writer fails.
// Structural problems are detected before the offending element is written.
// Bytes already written when a failure occurs stay written.
//
// # Security
//
// All text content and attribute values are escaped. Raw content is written
// verbatim and is never validated; it must only carry trusted markup.
//
// The renderer keeps no state between calls. A tree can be rendered many
// times, from many goroutines at once.
package render
