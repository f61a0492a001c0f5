package markup

// Component contributes attributes and/or children to an element under
// construction. Attr adds to the attribute set, Content and Group add
// children, Components forwards each of its members.
type Component interface {
	Apply(b *Builder)
}

// Builder accumulates the attributes and children of an element.
type Builder struct {
	tag      string
	attrs    []Attr
	children []Content
}

// NewBuilder starts an element with the given tag name.
func NewBuilder(tag string) *Builder {
	return &Builder{tag: tag}
}

// AddAttr appends an attribute. Attributes are kept in insertion order and
// are not de-duplicated by name.
func (b *Builder) AddAttr(a Attr) {
	b.attrs = append(b.attrs, a)
}

// AddChild appends child content. Sequences are spliced into the child list.
func (b *Builder) AddChild(c Content) {
	b.children = appendFlat(b.children, c)
}

// Attr appends attributes and returns b for chaining.
func (b *Builder) Attr(as ...Attr) *Builder {
	for _, a := range as {
		b.AddAttr(a)
	}
	return b
}

// Child appends child nodes and returns b for chaining. Nil nodes are dropped.
func (b *Builder) Child(nodes ...Node) *Builder {
	for _, n := range nodes {
		if !isNil(n) {
			b.AddChild(n.Content())
		}
	}
	return b
}

// Add applies components and returns b for chaining. Nil components are dropped.
func (b *Builder) Add(parts ...Component) *Builder {
	for _, p := range parts {
		if !isNil(p) {
			p.Apply(b)
		}
	}
	return b
}

// Build returns the finished element. The builder can keep being used; the
// returned Content does not share storage with it.
func (b *Builder) Build() Content {
	c := Content{kind: KindElement, tag: b.tag}
	if len(b.attrs) > 0 {
		c.attrs = append([]Attr(nil), b.attrs...)
	}
	if len(b.children) > 0 {
		c.items = append([]Content(nil), b.children...)
	}
	return c
}

// El creates an element. Each part is routed to the attribute set or the
// child list by its own Apply method; relative order within each is kept.
func El(tag string, parts ...Component) Content {
	return NewBuilder(tag).Add(parts...).Build()
}

// Group is a list of nodes that converts into a single sequence.
type Group []Node

// Content implements Node.
func (g Group) Content() Content { return Sequence(g...) }

// Apply implements Component by adding every node as a child.
func (g Group) Apply(b *Builder) {
	for _, n := range g {
		if !isNil(n) {
			b.AddChild(n.Content())
		}
	}
}

// Components is a list of mixed parts usable as a single Component, the
// equivalent of passing them one by one to El.
type Components []Component

// Apply implements Component.
func (cs Components) Apply(b *Builder) {
	b.Add(cs...)
}

// Parts bundles components into one, so that attributes and children can be
// produced together by a helper.
func Parts(parts ...Component) Components {
	return Components(parts)
}
