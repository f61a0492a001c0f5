// Package mathml provides constructors for the MathML Core elements.
//
//	mathml.Math(mathml.Mfrac(mathml.Mi(el.Text("a")), mathml.Mn(el.Text("2"))))
package mathml

import "github.com/vango-dev/el/pkg/markup"

func Annotation(parts ...markup.Component) markup.Content    { return markup.El("annotation", parts...) }
func AnnotationXml(parts ...markup.Component) markup.Content { return markup.El("annotation-xml", parts...) }
func Math(parts ...markup.Component) markup.Content          { return markup.El("math", parts...) }
func Merror(parts ...markup.Component) markup.Content        { return markup.El("merror", parts...) }
func Mfrac(parts ...markup.Component) markup.Content         { return markup.El("mfrac", parts...) }
func Mi(parts ...markup.Component) markup.Content            { return markup.El("mi", parts...) }
func Mmultiscripts(parts ...markup.Component) markup.Content { return markup.El("mmultiscripts", parts...) }
func Mn(parts ...markup.Component) markup.Content            { return markup.El("mn", parts...) }
func Mo(parts ...markup.Component) markup.Content            { return markup.El("mo", parts...) }
func Mover(parts ...markup.Component) markup.Content         { return markup.El("mover", parts...) }
func Mpadded(parts ...markup.Component) markup.Content       { return markup.El("mpadded", parts...) }
func Mphantom(parts ...markup.Component) markup.Content      { return markup.El("mphantom", parts...) }
func Mprescripts(parts ...markup.Component) markup.Content   { return markup.El("mprescripts", parts...) }
func Mroot(parts ...markup.Component) markup.Content         { return markup.El("mroot", parts...) }
func Mrow(parts ...markup.Component) markup.Content          { return markup.El("mrow", parts...) }
func Ms(parts ...markup.Component) markup.Content            { return markup.El("ms", parts...) }
func Mspace(parts ...markup.Component) markup.Content        { return markup.El("mspace", parts...) }
func Msqrt(parts ...markup.Component) markup.Content         { return markup.El("msqrt", parts...) }
func Mstyle(parts ...markup.Component) markup.Content        { return markup.El("mstyle", parts...) }
func Msub(parts ...markup.Component) markup.Content          { return markup.El("msub", parts...) }
func Msubsup(parts ...markup.Component) markup.Content       { return markup.El("msubsup", parts...) }
func Msup(parts ...markup.Component) markup.Content          { return markup.El("msup", parts...) }
func Mtable(parts ...markup.Component) markup.Content        { return markup.El("mtable", parts...) }
func Mtd(parts ...markup.Component) markup.Content           { return markup.El("mtd", parts...) }
func Mtext(parts ...markup.Component) markup.Content         { return markup.El("mtext", parts...) }
func Mtr(parts ...markup.Component) markup.Content           { return markup.El("mtr", parts...) }
func Munder(parts ...markup.Component) markup.Content        { return markup.El("munder", parts...) }
func Munderover(parts ...markup.Component) markup.Content    { return markup.El("munderover", parts...) }
func Semantics(parts ...markup.Component) markup.Content     { return markup.El("semantics", parts...) }
