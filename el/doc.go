// Package el provides the HTML DSL.
//
// It re-exports the markup and render entry points and adds a constructor
// for every HTML element and helpers for common attributes. SVG and MathML
// constructors live in the svg and mathml subpackages.
//
// Typical usage:
//
//	import . "github.com/vango-dev/el/el"
//
//	page := IntoDocument(Html(Lang("en"),
//	    Head(Title(Text("Example page"))),
//	    Body(
//	        H1(ID("heading"), Text("Example page")),
//	        P(Text("This is an example for a "), Em(Text("simple")), Text(" web page.")),
//	    ),
//	))
//	html, err := page.RenderToString()
package el
