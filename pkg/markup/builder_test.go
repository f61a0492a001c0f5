package markup

import "testing"

func attrNames(c Content) []string {
	var names []string
	for i := 0; i < c.NumAttrs(); i++ {
		names = append(names, c.Attr(i).Name)
	}
	return names
}

func TestEl(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := El("div")
		if node.Kind() != KindElement {
			t.Errorf("Kind = %v, want Element", node.Kind())
		}
		if node.Tag() != "div" {
			t.Errorf("Tag = %v, want div", node.Tag())
		}
		if node.NumAttrs() != 0 || node.Len() != 0 {
			t.Errorf("expected no attrs or children, got %d/%d", node.NumAttrs(), node.Len())
		}
	})

	t.Run("partitions attributes and children", func(t *testing.T) {
		node := El("p",
			Text("a"),
			Attribute("id", "x"),
			El("em", Text("b")),
			Flag("hidden"),
			Text("c"),
		)
		if got := attrNames(node); len(got) != 2 || got[0] != "id" || got[1] != "hidden" {
			t.Errorf("attrs = %v, want [id hidden]", got)
		}
		if node.Len() != 3 {
			t.Fatalf("Children len = %d, want 3", node.Len())
		}
		if node.Item(0).Text() != "a" || node.Item(1).Tag() != "em" || node.Item(2).Text() != "c" {
			t.Errorf("children out of order: %#v %#v %#v", node.Item(0), node.Item(1), node.Item(2))
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		node := El("div", nil, Attribute("class", "test"), nil)
		if node.NumAttrs() != 1 {
			t.Errorf("attrs = %d, want 1", node.NumAttrs())
		}
		if node.Len() != 0 {
			t.Errorf("Children len = %d, want 0", node.Len())
		}
	})

	t.Run("same-named attributes are kept in order", func(t *testing.T) {
		node := El("div", Attribute("class", "a"), Attribute("class", "b"))
		if node.NumAttrs() != 2 {
			t.Fatalf("attrs = %d, want 2", node.NumAttrs())
		}
		if node.Attr(0).Value != "a" || node.Attr(1).Value != "b" {
			t.Errorf("attrs = %+v", node.Attrs())
		}
	})

	t.Run("nested components flatten", func(t *testing.T) {
		node := El("ul",
			Parts(Attribute("id", "list"), Parts(Text("x"), Attribute("class", "c"))),
			Group{El("li"), Sequence(El("li"), Sequence(El("li")))},
		)
		if got := attrNames(node); len(got) != 2 || got[0] != "id" || got[1] != "class" {
			t.Errorf("attrs = %v, want [id class]", got)
		}
		if node.Len() != 4 {
			t.Fatalf("Children len = %d, want 4", node.Len())
		}
		for i := 1; i < 4; i++ {
			if node.Item(i).Tag() != "li" {
				t.Errorf("Item(%d) = %#v, want li", i, node.Item(i))
			}
		}
	})

	t.Run("empty sequence contributes nothing", func(t *testing.T) {
		node := El("p", Sequence(), Group{}, Parts())
		if node.Len() != 0 {
			t.Errorf("Children len = %d, want 0", node.Len())
		}
	})

	t.Run("attrs list", func(t *testing.T) {
		node := El("input", Attrs{Attribute("type", "text"), Flag("required")})
		if got := attrNames(node); len(got) != 2 || got[1] != "required" {
			t.Errorf("attrs = %v", got)
		}
		if node.Attr(1).HasValue() {
			t.Error("Flag should have no value")
		}
	})
}

type badge struct {
	label string
}

func (b badge) Apply(bl *Builder) {
	bl.AddAttr(Attribute("class", "badge"))
	bl.AddChild(Text(b.label))
}

func TestCustomComponent(t *testing.T) {
	node := El("span", badge{label: "new"})
	if node.NumAttrs() != 1 || node.Attr(0).Value != "badge" {
		t.Errorf("attrs = %+v", node.Attrs())
	}
	if node.Len() != 1 || node.Item(0).Text() != "new" {
		t.Errorf("children = %#v", node.Children())
	}
}

func TestTypedNilPartsAreDropped(t *testing.T) {
	var (
		missing  *card
		nilBadge *badge
	)
	node := El("div", nilBadge, (*Content)(nil), Group{missing, Text("x")}, Components(nil))
	if node.NumAttrs() != 0 || node.Len() != 1 || node.Item(0).Text() != "x" {
		t.Errorf("got %#v", node)
	}

	b := NewBuilder("p").Child(missing, (*Content)(nil), Text("y")).Add(nilBadge)
	if got := b.Build(); got.Len() != 1 || got.Item(0).Text() != "y" {
		t.Errorf("got %#v", got)
	}

	if got := Text("t").With(nilBadge); got.Text() != "t" {
		t.Errorf("With on text = %#v", got)
	}
	if got := El("p").With(nilBadge, Text("z")); got.Len() != 1 {
		t.Errorf("With = %#v", got)
	}
}

func TestBuilderChaining(t *testing.T) {
	b := NewBuilder("a").
		Attr(Attribute("href", "/")).
		Child(Text("home"), nil).
		Add(Flag("download"))

	first := b.Build()
	b.Child(Text("more"))
	second := b.Build()

	if first.Len() != 1 {
		t.Errorf("first Len = %d, want 1 (Build must not share storage)", first.Len())
	}
	if second.Len() != 2 {
		t.Errorf("second Len = %d, want 2", second.Len())
	}
	if got := attrNames(first); len(got) != 2 || got[0] != "href" || got[1] != "download" {
		t.Errorf("attrs = %v", got)
	}
}

func TestAttribute(t *testing.T) {
	a := Attribute("alt", "")
	if !a.HasValue() {
		t.Error("Attribute with empty value should still have a value")
	}
	f := Flag("disabled")
	if f.HasValue() || f.Name != "disabled" {
		t.Errorf("Flag = %+v", f)
	}
}
