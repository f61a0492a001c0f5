// Package svg provides constructors for the non-deprecated SVG elements.
//
// Tag names keep their SVG spelling (clipPath, feGaussianBlur). The
// functions are meant to be used qualified, svg.Circle(...), since several
// names (A, Text, Title, Style) also exist in HTML.
package svg

import "github.com/vango-dev/el/pkg/markup"

func A(parts ...markup.Component) markup.Content                   { return markup.El("a", parts...) }
func Animate(parts ...markup.Component) markup.Content             { return markup.El("animate", parts...) }
func AnimateMotion(parts ...markup.Component) markup.Content       { return markup.El("animateMotion", parts...) }
func AnimateTransform(parts ...markup.Component) markup.Content    { return markup.El("animateTransform", parts...) }
func Circle(parts ...markup.Component) markup.Content              { return markup.El("circle", parts...) }
func ClipPath(parts ...markup.Component) markup.Content            { return markup.El("clipPath", parts...) }
func Defs(parts ...markup.Component) markup.Content                { return markup.El("defs", parts...) }
func Desc(parts ...markup.Component) markup.Content                { return markup.El("desc", parts...) }
func Ellipse(parts ...markup.Component) markup.Content             { return markup.El("ellipse", parts...) }
func FeBlend(parts ...markup.Component) markup.Content             { return markup.El("feBlend", parts...) }
func FeColorMatrix(parts ...markup.Component) markup.Content       { return markup.El("feColorMatrix", parts...) }
func FeComponentTransfer(parts ...markup.Component) markup.Content { return markup.El("feComponentTransfer", parts...) }
func FeComposite(parts ...markup.Component) markup.Content         { return markup.El("feComposite", parts...) }
func FeConvolveMatrix(parts ...markup.Component) markup.Content    { return markup.El("feConvolveMatrix", parts...) }
func FeDiffuseLighting(parts ...markup.Component) markup.Content   { return markup.El("feDiffuseLighting", parts...) }
func FeDisplacementMap(parts ...markup.Component) markup.Content   { return markup.El("feDisplacementMap", parts...) }
func FeDistantLight(parts ...markup.Component) markup.Content      { return markup.El("feDistantLight", parts...) }
func FeDropShadow(parts ...markup.Component) markup.Content        { return markup.El("feDropShadow", parts...) }
func FeFlood(parts ...markup.Component) markup.Content             { return markup.El("feFlood", parts...) }
func FeFuncA(parts ...markup.Component) markup.Content             { return markup.El("feFuncA", parts...) }
func FeFuncB(parts ...markup.Component) markup.Content             { return markup.El("feFuncB", parts...) }
func FeFuncG(parts ...markup.Component) markup.Content             { return markup.El("feFuncG", parts...) }
func FeFuncR(parts ...markup.Component) markup.Content             { return markup.El("feFuncR", parts...) }
func FeGaussianBlur(parts ...markup.Component) markup.Content      { return markup.El("feGaussianBlur", parts...) }
func FeImage(parts ...markup.Component) markup.Content             { return markup.El("feImage", parts...) }
func FeMerge(parts ...markup.Component) markup.Content             { return markup.El("feMerge", parts...) }
func FeMergeNode(parts ...markup.Component) markup.Content         { return markup.El("feMergeNode", parts...) }
func FeMorphology(parts ...markup.Component) markup.Content        { return markup.El("feMorphology", parts...) }
func FeOffset(parts ...markup.Component) markup.Content            { return markup.El("feOffset", parts...) }
func FePointLight(parts ...markup.Component) markup.Content        { return markup.El("fePointLight", parts...) }
func FeSpecularLighting(parts ...markup.Component) markup.Content  { return markup.El("feSpecularLighting", parts...) }
func FeSpotLight(parts ...markup.Component) markup.Content         { return markup.El("feSpotLight", parts...) }
func FeTile(parts ...markup.Component) markup.Content              { return markup.El("feTile", parts...) }
func FeTurbulence(parts ...markup.Component) markup.Content        { return markup.El("feTurbulence", parts...) }
func Filter(parts ...markup.Component) markup.Content              { return markup.El("filter", parts...) }
func ForeignObject(parts ...markup.Component) markup.Content       { return markup.El("foreignObject", parts...) }
func G(parts ...markup.Component) markup.Content                   { return markup.El("g", parts...) }
func Image(parts ...markup.Component) markup.Content               { return markup.El("image", parts...) }
func Line(parts ...markup.Component) markup.Content                { return markup.El("line", parts...) }
func LinearGradient(parts ...markup.Component) markup.Content      { return markup.El("linearGradient", parts...) }
func Marker(parts ...markup.Component) markup.Content              { return markup.El("marker", parts...) }
func Mask(parts ...markup.Component) markup.Content                { return markup.El("mask", parts...) }
func Metadata(parts ...markup.Component) markup.Content            { return markup.El("metadata", parts...) }
func Mpath(parts ...markup.Component) markup.Content               { return markup.El("mpath", parts...) }
func Path(parts ...markup.Component) markup.Content                { return markup.El("path", parts...) }
func Pattern(parts ...markup.Component) markup.Content             { return markup.El("pattern", parts...) }
func Polygon(parts ...markup.Component) markup.Content             { return markup.El("polygon", parts...) }
func Polyline(parts ...markup.Component) markup.Content            { return markup.El("polyline", parts...) }
func RadialGradient(parts ...markup.Component) markup.Content      { return markup.El("radialGradient", parts...) }
func Rect(parts ...markup.Component) markup.Content                { return markup.El("rect", parts...) }
func Script(parts ...markup.Component) markup.Content              { return markup.El("script", parts...) }
func Set(parts ...markup.Component) markup.Content                 { return markup.El("set", parts...) }
func Stop(parts ...markup.Component) markup.Content                { return markup.El("stop", parts...) }
func Style(parts ...markup.Component) markup.Content               { return markup.El("style", parts...) }
func Svg(parts ...markup.Component) markup.Content                 { return markup.El("svg", parts...) }
func Switch(parts ...markup.Component) markup.Content              { return markup.El("switch", parts...) }
func Symbol(parts ...markup.Component) markup.Content              { return markup.El("symbol", parts...) }
func Text(parts ...markup.Component) markup.Content                { return markup.El("text", parts...) }
func TextPath(parts ...markup.Component) markup.Content            { return markup.El("textPath", parts...) }
func Title(parts ...markup.Component) markup.Content               { return markup.El("title", parts...) }
func Tspan(parts ...markup.Component) markup.Content               { return markup.El("tspan", parts...) }
func View(parts ...markup.Component) markup.Content                { return markup.El("view", parts...) }
