package el

import "github.com/vango-dev/el/pkg/markup"

// Document structure elements

func Html(parts ...Component) Content    { return markup.El("html", parts...) }
func Head(parts ...Component) Content    { return markup.El("head", parts...) }
func Body(parts ...Component) Content    { return markup.El("body", parts...) }
func Title(parts ...Component) Content   { return markup.El("title", parts...) }
func Meta(parts ...Component) Content    { return markup.El("meta", parts...) }
func LinkEl(parts ...Component) Content  { return markup.El("link", parts...) }
func Base(parts ...Component) Content    { return markup.El("base", parts...) }
func StyleEl(parts ...Component) Content { return markup.El("style", parts...) }

// Content sectioning

func Header(parts ...Component) Content  { return markup.El("header", parts...) }
func Footer(parts ...Component) Content  { return markup.El("footer", parts...) }
func Main(parts ...Component) Content    { return markup.El("main", parts...) }
func Nav(parts ...Component) Content     { return markup.El("nav", parts...) }
func Section(parts ...Component) Content { return markup.El("section", parts...) }
func Article(parts ...Component) Content { return markup.El("article", parts...) }
func Aside(parts ...Component) Content   { return markup.El("aside", parts...) }
func Address(parts ...Component) Content { return markup.El("address", parts...) }
func Search(parts ...Component) Content  { return markup.El("search", parts...) }
func H1(parts ...Component) Content      { return markup.El("h1", parts...) }
func H2(parts ...Component) Content      { return markup.El("h2", parts...) }
func H3(parts ...Component) Content      { return markup.El("h3", parts...) }
func H4(parts ...Component) Content      { return markup.El("h4", parts...) }
func H5(parts ...Component) Content      { return markup.El("h5", parts...) }
func H6(parts ...Component) Content      { return markup.El("h6", parts...) }
func Hgroup(parts ...Component) Content  { return markup.El("hgroup", parts...) }

// Text content

func Div(parts ...Component) Content        { return markup.El("div", parts...) }
func P(parts ...Component) Content          { return markup.El("p", parts...) }
func Pre(parts ...Component) Content        { return markup.El("pre", parts...) }
func Blockquote(parts ...Component) Content { return markup.El("blockquote", parts...) }
func Ul(parts ...Component) Content         { return markup.El("ul", parts...) }
func Ol(parts ...Component) Content         { return markup.El("ol", parts...) }
func Li(parts ...Component) Content         { return markup.El("li", parts...) }
func Dl(parts ...Component) Content         { return markup.El("dl", parts...) }
func Dt(parts ...Component) Content         { return markup.El("dt", parts...) }
func Dd(parts ...Component) Content         { return markup.El("dd", parts...) }
func Hr(parts ...Component) Content         { return markup.El("hr", parts...) }
func Figure(parts ...Component) Content     { return markup.El("figure", parts...) }
func Figcaption(parts ...Component) Content { return markup.El("figcaption", parts...) }
func Menu(parts ...Component) Content       { return markup.El("menu", parts...) }

// Inline text semantics

func A(parts ...Component) Content           { return markup.El("a", parts...) }
func Span(parts ...Component) Content        { return markup.El("span", parts...) }
func Strong(parts ...Component) Content      { return markup.El("strong", parts...) }
func Em(parts ...Component) Content          { return markup.El("em", parts...) }
func B(parts ...Component) Content           { return markup.El("b", parts...) }
func I(parts ...Component) Content           { return markup.El("i", parts...) }
func U(parts ...Component) Content           { return markup.El("u", parts...) }
func S(parts ...Component) Content           { return markup.El("s", parts...) }
func Small(parts ...Component) Content       { return markup.El("small", parts...) }
func Mark(parts ...Component) Content        { return markup.El("mark", parts...) }
func Sub(parts ...Component) Content         { return markup.El("sub", parts...) }
func Sup(parts ...Component) Content         { return markup.El("sup", parts...) }
func Code(parts ...Component) Content        { return markup.El("code", parts...) }
func Kbd(parts ...Component) Content         { return markup.El("kbd", parts...) }
func Samp(parts ...Component) Content        { return markup.El("samp", parts...) }
func Var(parts ...Component) Content         { return markup.El("var", parts...) }
func Abbr(parts ...Component) Content        { return markup.El("abbr", parts...) }
func Time_(parts ...Component) Content       { return markup.El("time", parts...) }
func Cite(parts ...Component) Content        { return markup.El("cite", parts...) }
func Q(parts ...Component) Content           { return markup.El("q", parts...) }
func Dfn(parts ...Component) Content         { return markup.El("dfn", parts...) }
func Ruby(parts ...Component) Content        { return markup.El("ruby", parts...) }
func Rt(parts ...Component) Content          { return markup.El("rt", parts...) }
func Rp(parts ...Component) Content          { return markup.El("rp", parts...) }
func Bdi(parts ...Component) Content         { return markup.El("bdi", parts...) }
func Bdo(parts ...Component) Content         { return markup.El("bdo", parts...) }
func DataElement(parts ...Component) Content { return markup.El("data", parts...) }
func Br(parts ...Component) Content          { return markup.El("br", parts...) }
func Wbr(parts ...Component) Content         { return markup.El("wbr", parts...) }

// Forms

func Form(parts ...Component) Content     { return markup.El("form", parts...) }
func Input(parts ...Component) Content    { return markup.El("input", parts...) }
func Textarea(parts ...Component) Content { return markup.El("textarea", parts...) }
func Select(parts ...Component) Content   { return markup.El("select", parts...) }
func Option(parts ...Component) Content   { return markup.El("option", parts...) }
func Optgroup(parts ...Component) Content { return markup.El("optgroup", parts...) }
func Button(parts ...Component) Content   { return markup.El("button", parts...) }
func Label(parts ...Component) Content    { return markup.El("label", parts...) }
func Fieldset(parts ...Component) Content { return markup.El("fieldset", parts...) }
func Legend(parts ...Component) Content   { return markup.El("legend", parts...) }
func Datalist(parts ...Component) Content { return markup.El("datalist", parts...) }
func Output(parts ...Component) Content   { return markup.El("output", parts...) }
func Progress(parts ...Component) Content { return markup.El("progress", parts...) }
func Meter(parts ...Component) Content    { return markup.El("meter", parts...) }

// Table content

func Table(parts ...Component) Content    { return markup.El("table", parts...) }
func Thead(parts ...Component) Content    { return markup.El("thead", parts...) }
func Tbody(parts ...Component) Content    { return markup.El("tbody", parts...) }
func Tfoot(parts ...Component) Content    { return markup.El("tfoot", parts...) }
func Tr(parts ...Component) Content       { return markup.El("tr", parts...) }
func Th(parts ...Component) Content       { return markup.El("th", parts...) }
func Td(parts ...Component) Content       { return markup.El("td", parts...) }
func Caption(parts ...Component) Content  { return markup.El("caption", parts...) }
func Colgroup(parts ...Component) Content { return markup.El("colgroup", parts...) }
func Col(parts ...Component) Content      { return markup.El("col", parts...) }

// Image and multimedia

func Img(parts ...Component) Content     { return markup.El("img", parts...) }
func Picture(parts ...Component) Content { return markup.El("picture", parts...) }
func Source(parts ...Component) Content  { return markup.El("source", parts...) }
func Video(parts ...Component) Content   { return markup.El("video", parts...) }
func Audio(parts ...Component) Content   { return markup.El("audio", parts...) }
func Track(parts ...Component) Content   { return markup.El("track", parts...) }
func Map_(parts ...Component) Content    { return markup.El("map", parts...) }
func Area(parts ...Component) Content    { return markup.El("area", parts...) }

// Embedded content

func Iframe(parts ...Component) Content { return markup.El("iframe", parts...) }
func Embed(parts ...Component) Content  { return markup.El("embed", parts...) }
func Object(parts ...Component) Content { return markup.El("object", parts...) }
func Param(parts ...Component) Content  { return markup.El("param", parts...) }
func Canvas(parts ...Component) Content { return markup.El("canvas", parts...) }

// Interactive elements

func Details(parts ...Component) Content { return markup.El("details", parts...) }
func Summary(parts ...Component) Content { return markup.El("summary", parts...) }
func Dialog(parts ...Component) Content  { return markup.El("dialog", parts...) }

// Demarcating edits

func Del(parts ...Component) Content { return markup.El("del", parts...) }
func Ins(parts ...Component) Content { return markup.El("ins", parts...) }

// Scripting and web components

func Script(parts ...Component) Content   { return markup.El("script", parts...) }
func Noscript(parts ...Component) Content { return markup.El("noscript", parts...) }
func Template(parts ...Component) Content { return markup.El("template", parts...) }
func Slot(parts ...Component) Content     { return markup.El("slot", parts...) }

// CustomElement creates an element with an arbitrary tag name, such as a
// web component. The name is validated when the element is rendered.
func CustomElement(tag string, parts ...Component) Content {
	return markup.El(tag, parts...)
}
