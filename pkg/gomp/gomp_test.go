package gomp

import (
	"errors"
	"io"
	"strings"
	"testing"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

func TestToNode(t *testing.T) {
	content := markup.El("p", markup.Attribute("class", "lead"), markup.Text("a < b"))
	var b strings.Builder
	if err := h.Section(ToNode(content)).Render(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<section><p class="lead">a &lt; b</p></section>`
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestToNodeStructuralError(t *testing.T) {
	bad := markup.El("br", markup.Text("x"))
	err := h.Div(ToNode(bad)).Render(io.Discard)
	if !errors.Is(err, render.ErrVoidContent) {
		t.Errorf("err = %v, want ErrVoidContent", err)
	}
}

func TestFromNode(t *testing.T) {
	inner, err := FromNode(h.Ul(g.Map([]string{"x", "y"}, func(s string) g.Node {
		return h.Li(g.Text(s))
	})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Kind() != markup.KindRaw {
		t.Errorf("Kind = %v, want Raw", inner.Kind())
	}
	got, err := render.RenderToString(markup.El("nav", inner))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<nav><ul><li>x</li><li>y</li></ul></nav>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromNodeNil(t *testing.T) {
	c, err := FromNode(nil)
	if err != nil || !c.IsEmpty() {
		t.Errorf("FromNode(nil) = %#v, %v", c, err)
	}
}

func TestFromNodeError(t *testing.T) {
	boom := errors.New("boom")
	_, err := FromNode(g.NodeFunc(func(io.Writer) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestMustFromNodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustFromNode(g.NodeFunc(func(io.Writer) error { return errors.New("boom") }))
}

func TestRoundTrip(t *testing.T) {
	original := markup.El("em", markup.Text(`"quoted" & <tagged>`))
	back, err := FromNode(ToNode(original))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := render.RenderToString(original)
	b, _ := render.RenderToString(back)
	if a != b {
		t.Errorf("round trip changed output: %q vs %q", a, b)
	}
}
