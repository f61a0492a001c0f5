// Package errors turns render failures into coded, actionable diagnostics.
//
// Every diagnostic carries a code (e.g. "E103") that maps to a short
// message, a longer explanation and a hint. Render errors from
// pkg/render are converted with FromRender, which also keeps the tree
// path of the offending element.
//
// # Error Categories
//
//   - render: structural problems found while rendering (bad names, void children)
//   - output: the output sink failed
//   - cli: command-line usage errors
//
// # Usage
//
//	if err := render.Render(w, page); err != nil {
//	    errors.Print(os.Stderr, errors.FromRender(err))
//	}
//
//	// where page is El("body", Text("x"), El("img", Text("y")))
//	// Output:
//	// ERROR E103: Void element has children
//	//
//	//   at /1(img)   name "img"
//	//
//	//   Void elements such as img, br and input have no end tag and
//	//   cannot contain content.
//	//
//	//   Hint: Move the children next to the element, or use a non-void element.
package errors
