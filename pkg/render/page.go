package render

import (
	"github.com/vango-dev/el/pkg/markup"
)

// PageData describes a conventional HTML page. It is a convenience above
// IntoDocument, which adds no skeleton of its own.
type PageData struct {
	// Body is the content placed inside <body>
	Body markup.Node

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.)
	Links []LinkTag

	// Scripts contains script tags to include. Deferred and async scripts
	// go in the head, the others at the end of the body.
	Scripts []ScriptTag

	// Styles contains inline CSS. It is trusted and not escaped.
	Styles []string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content, trusted
}

// Document builds the page as a document:
//
//	<!DOCTYPE html><html lang="en"><head>...</head><body>...</body></html>
func (p PageData) Document() Document {
	return IntoDocument(p.Tree())
}

// Tree builds the <html> element of the page.
func (p PageData) Tree() markup.Content {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}
	return markup.El("html", markup.Attribute("lang", lang),
		p.head(),
		p.body(),
	)
}

// head builds the document head section.
func (p PageData) head() markup.Content {
	b := markup.NewBuilder("head")
	b.Child(
		markup.El("meta", markup.Attribute("charset", "utf-8")),
		markup.El("meta",
			markup.Attribute("name", "viewport"),
			markup.Attribute("content", "width=device-width, initial-scale=1"),
		),
	)
	if p.Title != "" {
		b.Child(markup.El("title", markup.Text(p.Title)))
	}
	for _, meta := range p.Meta {
		b.Child(meta.element())
	}
	for _, link := range p.Links {
		b.Child(link.element())
	}
	for _, href := range p.StyleSheets {
		b.Child(markup.El("link",
			markup.Attribute("rel", "stylesheet"),
			markup.Attribute("href", href),
		))
	}
	for _, style := range p.Styles {
		b.Child(markup.El("style", markup.Raw(style)))
	}
	for _, script := range p.Scripts {
		if script.Defer || script.Async {
			b.Child(script.element())
		}
	}
	return b.Build()
}

// body builds the body element, with blocking scripts last.
func (p PageData) body() markup.Content {
	b := markup.NewBuilder("body")
	if p.Body != nil {
		b.Child(p.Body)
	}
	for _, script := range p.Scripts {
		if !script.Defer && !script.Async {
			b.Child(script.element())
		}
	}
	return b.Build()
}

// optional adds the attribute only when value is set.
func optional(b *markup.Builder, name, value string) {
	if value != "" {
		b.AddAttr(markup.Attribute(name, value))
	}
}

// element renders a meta element.
func (m MetaTag) element() markup.Content {
	b := markup.NewBuilder("meta")
	optional(b, "charset", m.Charset)
	optional(b, "name", m.Name)
	optional(b, "property", m.Property)
	optional(b, "http-equiv", m.HTTPEquiv)
	optional(b, "content", m.Content)
	return b.Build()
}

// element renders a link element.
func (l LinkTag) element() markup.Content {
	b := markup.NewBuilder("link")
	optional(b, "rel", l.Rel)
	optional(b, "href", l.Href)
	optional(b, "type", l.Type)
	optional(b, "sizes", l.Sizes)
	optional(b, "crossorigin", l.CrossOrigin)
	optional(b, "media", l.Media)
	return b.Build()
}

// element renders a script element.
func (s ScriptTag) element() markup.Content {
	b := markup.NewBuilder("script")
	optional(b, "src", s.Src)
	if s.Module {
		b.AddAttr(markup.Attribute("type", "module"))
	} else {
		optional(b, "type", s.Type)
	}
	if s.Defer {
		b.AddAttr(markup.Flag("defer"))
	}
	if s.Async {
		b.AddAttr(markup.Flag("async"))
	}
	if s.Inline != "" {
		b.Child(markup.Raw(s.Inline))
	}
	return b.Build()
}
