package render

import (
	"errors"
	"strings"
	"testing"

	. "github.com/vango-dev/el/pkg/markup"
)

var errTestWrite = errors.New("test write error")

type countingWriter struct {
	Writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.Writes++
	return len(p), nil
}

type failingWriter struct {
	FailAt int
	Writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes == w.FailAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

// limitWriter accepts the first N bytes and fails on anything beyond.
type limitWriter struct {
	N   int
	buf strings.Builder
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.N - w.buf.Len()
	if len(p) <= room {
		w.buf.Write(p)
		return len(p), nil
	}
	w.buf.Write(p[:room])
	return room, errTestWrite
}

func sampleTree() Content {
	return El("html", Attribute("lang", "en"),
		El("head", El("title", Text("A & B"))),
		El("body",
			El("p", Attribute("class", "x"), Text("a "), El("em", Text("<b>")), Text(" c")),
			El("img", Attribute("src", "x.png"), Flag("hidden")),
			Raw("<!-- raw -->"),
		),
	)
}

func TestRenderWriteErrorPaths(t *testing.T) {
	doc := IntoDocument(sampleTree())

	cw := &countingWriter{}
	if err := doc.Render(cw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i <= cw.Writes; i++ {
		fw := &failingWriter{FailAt: i}
		err := doc.Render(fw)
		if !errors.Is(err, errTestWrite) {
			t.Fatalf("failAt=%d: err=%v, want %v", i, err, errTestWrite)
		}
		if IsStructural(err) {
			t.Fatalf("failAt=%d: write failure reported as structural", i)
		}
		if fw.Writes != i {
			t.Fatalf("failAt=%d: render continued after failure (%d writes)", i, fw.Writes)
		}
	}
}

func TestRenderStopsAfterNBytes(t *testing.T) {
	doc := IntoDocument(sampleTree())
	full, err := doc.RenderToString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for n := 0; n < len(full); n++ {
		lw := &limitWriter{N: n}
		err := doc.Render(lw)
		if !errors.Is(err, errTestWrite) {
			t.Fatalf("N=%d: err=%v, want %v", n, err, errTestWrite)
		}
		if got := lw.buf.String(); got != full[:n] {
			t.Fatalf("N=%d: wrote %q, want prefix %q", n, got, full[:n])
		}
	}

	lw := &limitWriter{N: len(full)}
	if err := doc.Render(lw); err != nil {
		t.Fatalf("N=len: unexpected error: %v", err)
	}
}

func TestVoidElementWithChildren(t *testing.T) {
	tests := []struct {
		name string
		node Content
	}{
		{"element child", El("input", El("p"))},
		{"text child", El("br", Text("x"))},
		{"empty text child", El("img", Text(""))},
		{"raw child", El("hr", Raw(""))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			err := Render(&b, tt.node)
			if !errors.Is(err, ErrVoidContent) {
				t.Fatalf("err = %v, want ErrVoidContent", err)
			}
			if !IsStructural(err) {
				t.Error("void content should be a structural error")
			}
			if b.Len() != 0 {
				t.Errorf("nothing should be written for the failing element, got %q", b.String())
			}
		})
	}
}

func TestInvalidNames(t *testing.T) {
	tests := []struct {
		name     string
		node     Content
		sentinel error
		bad      string
	}{
		{"tag with space", El("my tag"), ErrInvalidTagName, "my tag"},
		{"empty tag", El(""), ErrInvalidTagName, ""},
		{"tag injection", El("p><script"), ErrInvalidTagName, "p><script"},
		{"attr with equals", El("p", Attribute("a=b", "x")), ErrInvalidAttrName, "a=b"},
		{"attr with quote", El("p", Flag(`x"`)), ErrInvalidAttrName, `x"`},
		{"empty attr", El("p", Attribute("", "x")), ErrInvalidAttrName, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderToString(tt.node)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("err = %v, want %v", err, tt.sentinel)
			}
			var re *Error
			if !errors.As(err, &re) {
				t.Fatalf("err is %T, want *Error", err)
			}
			if re.Name != tt.bad {
				t.Errorf("Name = %q, want %q", re.Name, tt.bad)
			}
		})
	}
}

func TestErrorPath(t *testing.T) {
	tree := El("form",
		Text("greeting: "),
		El("div", El("input", Text("hello"))),
	)
	var b strings.Builder
	err := Render(&b, tree)

	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if got := re.Path(); got != "/1(div)/0(input)" {
		t.Errorf("Path = %q, want %q", got, "/1(div)/0(input)")
	}
	want := `render error at /1(div)/0(input): void element cannot have children "input"`
	if re.Error() != want {
		t.Errorf("Error() = %q, want %q", re.Error(), want)
	}
	// everything before the failing element stays written
	if b.String() != "<form>greeting: <div>" {
		t.Errorf("partial output = %q", b.String())
	}
}

func TestErrorPathRootAndSequence(t *testing.T) {
	_, err := RenderToString(El("bad tag"))
	var re *Error
	if !errors.As(err, &re) || re.Path() != "/" {
		t.Errorf("root error path = %v", err)
	}

	_, err = RenderToString(Sequence(Text("a"), Text("b"), El("x y")))
	if !errors.As(err, &re) || re.Path() != "/2(x y)" {
		t.Errorf("sequence error = %v", err)
	}
}

func TestWriteErrorMessage(t *testing.T) {
	err := Render(&failingWriter{FailAt: 1}, El("p"))
	want := "render error at /: write: test write error"
	if err == nil || err.Error() != want {
		t.Errorf("err = %v, want %q", err, want)
	}
}

func TestIsStructuralNonRenderError(t *testing.T) {
	if IsStructural(errTestWrite) {
		t.Error("plain errors are not structural")
	}
	if IsStructural(nil) {
		t.Error("nil is not structural")
	}
}
