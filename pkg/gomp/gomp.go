// Package gomp bridges markup content and gomponents nodes, so that trees
// built with either library can be embedded in the other.
package gomp

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

// ToNode wraps markup content as a gomponents node. The content is validated
// and rendered each time the node renders; a structural error is returned
// from Render like any other write error.
func ToNode(n markup.Node) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return render.Render(w, n)
	})
}

// FromNode renders a gomponents node and wraps the output as raw content.
// gomponents escapes its own text, so the result is inserted verbatim.
func FromNode(n g.Node) (markup.Content, error) {
	if n == nil {
		return markup.Nothing(), nil
	}
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return markup.Content{}, err
	}
	return markup.Raw(b.String()), nil
}

// MustFromNode is like FromNode but panics on error. It is intended for
// static nodes whose rendering cannot fail.
func MustFromNode(n g.Node) markup.Content {
	c, err := FromNode(n)
	if err != nil {
		panic(err)
	}
	return c
}
