package markup

// Attr is a single attribute of an element.
//
// An Attr with NoValue set is a boolean attribute and renders as its bare
// name (e.g. disabled). Otherwise it renders as name="value", even when the
// value is empty.
type Attr struct {
	Name    string
	Value   string
	NoValue bool
}

// Attribute creates an attribute with a value.
func Attribute(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Flag creates a value-less boolean attribute.
func Flag(name string) Attr {
	return Attr{Name: name, NoValue: true}
}

// HasValue reports whether the attribute carries a value.
func (a Attr) HasValue() bool { return !a.NoValue }

// Apply implements Component by adding a to the attribute set.
func (a Attr) Apply(b *Builder) { b.AddAttr(a) }

// Attrs is a list of attributes usable as a single Component.
type Attrs []Attr

// Apply implements Component.
func (as Attrs) Apply(b *Builder) {
	for _, a := range as {
		b.AddAttr(a)
	}
}
