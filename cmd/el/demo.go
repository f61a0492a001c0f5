package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/el/el"
	elerrors "github.com/vango-dev/el/internal/errors"
	"github.com/vango-dev/el/pkg/render"
)

type feature struct {
	Name string
	Done bool
}

var demoFeatures = []feature{
	{"Escaped text & attributes", true},
	{"Void elements", true},
	{"Render-time validation", true},
	{"<script> injection", false},
}

// demoBody is the content of the demo page.
func demoBody(title string) el.Content {
	return el.Fragment(
		el.Header(el.H1(el.Text(title))),
		el.Main(
			el.P(el.Text("Rendered by "), el.Code(el.Text("el")), el.Text(".")),
			demoList(),
			el.Comment("end of list"),
			el.Form(el.Action("/search"), el.Method("get"),
				el.Label(el.For("q"), el.Text("Search")),
				el.Input(el.ID("q"), el.Name("q"), el.Type("search"), el.Required()),
				el.Button(el.Type("submit"), el.Text("Go")),
			),
		),
	)
}

// demoList renders the feature list, also served as a fragment.
func demoList() el.Content {
	return el.Ul(el.Class("features"),
		el.Range(demoFeatures, func(f feature, i int) el.Node {
			return el.Li(
				el.Data("index", fmt.Sprint(i)),
				el.ClassIf(f.Done, "done"),
				el.Text(f.Name),
			)
		}),
	)
}

func demoPage(title string) render.PageData {
	return render.PageData{
		Title: title,
		Body:  demoBody(title),
		Meta: []render.MetaTag{
			{Name: "description", Content: "A page rendered by el"},
		},
		Styles: []string{"li.done { text-decoration: line-through; }"},
	}
}

func demoCmd() *cobra.Command {
	var (
		title    string
		fragment bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a demo page to standard output",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			var err error
			if fragment {
				err = render.Render(w, demoBody(title))
			} else {
				err = demoPage(title).Document().Render(w)
			}
			if err != nil {
				return elerrors.FromRender(err)
			}
			fmt.Fprintln(w)
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "el demo", "Page title")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Render only the body content, without doctype")

	return cmd
}
