// Package markup provides the content model for building HTML documents.
//
// A document is an immutable tree of Content values. Content is one of four
// kinds: escaped text, raw (pre-escaped) markup, an element with attributes
// and children, or a sequence that groups other content without adding any
// markup of its own.
//
// # Building Trees
//
// Elements are created with El, which accepts any number of Components.
// Attributes and children can be mixed freely; each part decides for itself
// whether it contributes to the attribute set or to the child list:
//
//	El("p", Attribute("class", "lead"),
//	    Text("a "),
//	    El("em", Text("b")),
//	    Text(" c"),
//	)
//
// Attributes keep their insertion order and are never de-duplicated. Two
// class attributes stay two class attributes.
//
// # Conversion
//
// Node is the capability of converting into Content. Content, Group and any
// user-defined type with a Content method implement it. Component is the
// capability of contributing to an element under construction.
//
// Building a tree never fails. Escaping and name validation happen when the
// tree is rendered, see package render.
package markup
