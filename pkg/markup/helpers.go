package markup

import (
	"iter"
	"strings"
)

// If returns the node's content if condition is true, an empty sequence
// otherwise. A nil node, typed or not, also yields an empty sequence.
func If(condition bool, n Node) Content {
	if condition && !isNil(n) {
		return n.Content()
	}
	return Content{}
}

// IfElse returns the content of the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse Node) Content {
	if condition {
		return If(true, ifTrue)
	}
	return If(true, ifFalse)
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() Node) Content {
	if condition {
		return If(true, fn())
	}
	return Content{}
}

// Maybe converts an optional node. A nil pointer yields an empty sequence.
func Maybe[N Node](n *N) Content {
	if n == nil {
		return Content{}
	}
	return (*n).Content()
}

// Map converts each item of a slice and concatenates the results.
func Map[T any](items []T, fn func(item T, index int) Node) Content {
	nodes := make([]Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(item, i))
	}
	return Sequence(nodes...)
}

// Each converts every value produced by an iterator and concatenates the results.
func Each[T any](seq iter.Seq[T], fn func(item T) Node) Content {
	var nodes []Node
	for item := range seq {
		nodes = append(nodes, fn(item))
	}
	return Sequence(nodes...)
}

// Nothing returns an empty sequence.
func Nothing() Content {
	return Content{}
}

// Comment creates an HTML comment. Sequences that would end the comment
// early or make it malformed are rewritten, so the result is always a
// single well-formed comment.
func Comment(text string) Content {
	text = strings.NewReplacer("<!--", "<!==", "-->", "==>", "--!>", "==!>").Replace(text)

	var b strings.Builder
	b.Grow(len(text) + 9)
	b.WriteString("<!--")
	if strings.HasPrefix(text, ">") || strings.HasPrefix(text, "->") {
		b.WriteByte(' ')
	}
	b.WriteString(text)
	if strings.HasSuffix(text, "<!-") {
		b.WriteByte(' ')
	}
	b.WriteString("-->")
	return Raw(b.String())
}
