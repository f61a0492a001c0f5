package el

import (
	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

// Type aliases for the markup and render types used by the DSL.
type Content = markup.Content
type Node = markup.Node
type Kind = markup.Kind
type Attr = markup.Attr
type Attrs = markup.Attrs
type Component = markup.Component
type Components = markup.Components
type Group = markup.Group
type Builder = markup.Builder
type Document = render.Document
type PageData = render.PageData
