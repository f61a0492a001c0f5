// This file re-exports markup and render helpers for the el package.
package el

import (
	"io"
	"iter"

	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

func Text(s string) Content {
	return markup.Text(s)
}
func Textf(format string, args ...any) Content {
	return markup.Textf(format, args...)
}
func Texts(ss ...string) Content {
	return markup.Texts(ss...)
}
func Raw(html string) Content {
	return markup.Raw(html)
}
func Rawf(format string, args ...any) Content {
	return markup.Rawf(format, args...)
}
func Comment(text string) Content {
	return markup.Comment(text)
}
func Fragment(nodes ...Node) Content {
	return markup.Sequence(nodes...)
}
func El(tag string, parts ...Component) Content {
	return markup.El(tag, parts...)
}
func NewBuilder(tag string) *Builder {
	return markup.NewBuilder(tag)
}
func Parts(parts ...Component) Components {
	return markup.Parts(parts...)
}
func Attribute(name, value string) Attr {
	return markup.Attribute(name, value)
}
func Flag(name string) Attr {
	return markup.Flag(name)
}
func If(condition bool, n Node) Content {
	return markup.If(condition, n)
}
func IfElse(condition bool, ifTrue, ifFalse Node) Content {
	return markup.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() Node) Content {
	return markup.When(condition, fn)
}
func Maybe[N Node](n *N) Content {
	return markup.Maybe(n)
}
func Range[T any](items []T, fn func(item T, index int) Node) Content {
	return markup.Map(items, fn)
}
func Each[T any](seq iter.Seq[T], fn func(item T) Node) Content {
	return markup.Each(seq, fn)
}
func Nothing() Content {
	return markup.Nothing()
}
func IsVoidElement(tag string) bool {
	return markup.IsVoidElement(tag)
}
func IntoDocument(n Node) Document {
	return render.IntoDocument(n)
}
func Render(w io.Writer, n Node) error {
	return render.Render(w, n)
}
func RenderToString(n Node) (string, error) {
	return render.RenderToString(n)
}
