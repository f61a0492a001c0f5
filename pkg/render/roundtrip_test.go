package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	. "github.com/vango-dev/el/pkg/markup"
)

// parseBack parses a fragment the way a browser would inside <body>.
func parseBack(t *testing.T, fragment string) []*html.Node {
	t.Helper()
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		t.Fatalf("ParseFragment(%q): %v", fragment, err)
	}
	return nodes
}

// parseable filters out inputs the HTML parser legitimately normalizes:
// carriage returns and NUL.
func parseable(s string) bool {
	return !strings.ContainsAny(s, "\r\x00")
}

var roundTripInputs = []string{
	"",
	"plain",
	"a < b && c > d",
	`"double" and 'single'`,
	"</p><script>alert(1)</script>",
	"&amp; &lt; &#39; &nbsp;",
	"<!-- not a comment -->",
	"unicode 世界 🌍",
	"line\nbreak\ttab",
	"<![CDATA[x]]>",
	"bad \xff\xfe<bytes>",
}

func checkTextRoundTrip(t *testing.T, s string) {
	t.Helper()
	out, err := RenderToString(El("p", Text(s)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nodes := parseBack(t, out)
	if len(nodes) != 1 || nodes[0].Data != "p" {
		t.Fatalf("%q parsed into %d top-level nodes", out, len(nodes))
	}
	p := nodes[0]
	if s == "" {
		if p.FirstChild != nil {
			t.Errorf("empty text produced children in %q", out)
		}
		return
	}
	if p.FirstChild == nil || p.FirstChild != p.LastChild || p.FirstChild.Type != html.TextNode {
		t.Fatalf("%q did not parse into a single text node", out)
	}
	if want := strings.ToValidUTF8(s, "\uFFFD"); p.FirstChild.Data != want {
		t.Errorf("round trip = %q, want %q", p.FirstChild.Data, want)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, s := range roundTripInputs {
		checkTextRoundTrip(t, s)
	}
}

func TestAttributeRoundTrip(t *testing.T) {
	for _, s := range roundTripInputs {
		out, err := RenderToString(El("span", Attribute("title", s), Flag("hidden")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		nodes := parseBack(t, out)
		if len(nodes) != 1 {
			t.Fatalf("%q parsed into %d nodes", out, len(nodes))
		}
		attrs := nodes[0].Attr
		if len(attrs) != 2 || attrs[0].Key != "title" || attrs[0].Val != strings.ToValidUTF8(s, "\uFFFD") || attrs[1].Key != "hidden" {
			t.Errorf("attributes of %q = %+v", out, attrs)
		}
	}
}

func TestVoidElementsParseWithoutChildren(t *testing.T) {
	out, err := RenderToString(El("div", El("br"), El("img", Attribute("src", "x.png")), Text("after")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	div := parseBack(t, out)[0]
	var kids []string
	for c := div.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, c.Data)
		if c.Type == html.ElementNode && c.FirstChild != nil {
			t.Errorf("<%s> parsed with children", c.Data)
		}
	}
	if strings.Join(kids, ",") != "br,img,after" {
		t.Errorf("children = %v", kids)
	}
}

func FuzzTextRoundTrip(f *testing.F) {
	for _, s := range roundTripInputs {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		for _, n := range []Node{Text(s), El("b", Attribute("title", s))} {
			out, err := RenderToString(n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !utf8.ValidString(out) {
				t.Errorf("%#v rendered invalid UTF-8 %q", n, out)
			}
		}
		if !parseable(s) {
			t.Skip()
		}
		checkTextRoundTrip(t, s)

		raw, err := RenderToString(Raw(s))
		if err != nil || raw != s {
			t.Errorf("Raw(%q) rendered %q, %v", s, raw, err)
		}
	})
}
