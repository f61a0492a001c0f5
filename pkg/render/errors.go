package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Structural errors, detected before the offending element is written.
var (
	ErrInvalidTagName  = errors.New("invalid tag name")
	ErrInvalidAttrName = errors.New("invalid attribute name")
	ErrVoidContent     = errors.New("void element cannot have children")
)

// Error describes a failed render and where in the tree it happened.
type Error struct {
	// Err is one of the structural sentinels, or the error returned by the
	// writer.
	Err error

	// Name is the offending tag or attribute name for structural errors.
	Name string

	write bool
	steps []step // innermost first
}

type step struct {
	index int
	tag   string
}

func structuralError(err error, name string) *Error {
	return &Error{Err: err, Name: name}
}

func writeError(err error) *Error {
	return &Error{Err: err, write: true}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("render error at ")
	b.WriteString(e.Path())
	b.WriteString(": ")
	if e.write {
		b.WriteString("write: ")
		b.WriteString(e.Err.Error())
		return b.String()
	}
	b.WriteString(e.Err.Error())
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	return b.String()
}

// Unwrap returns the sentinel or writer error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Structural reports whether the error was caused by the tree rather than
// by the writer.
func (e *Error) Structural() bool {
	return !e.write
}

// Path is a human-readable path from the rendered root to the node that
// caused the error. Each segment is the child index, followed by the tag
// name in parentheses when the child is an element, e.g. "/1(form)/0(input)".
// An error at the root itself has path "/".
func (e *Error) Path() string {
	if len(e.steps) == 0 {
		return "/"
	}
	var b strings.Builder
	for i := len(e.steps) - 1; i >= 0; i-- {
		s := e.steps[i]
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(s.index))
		if s.tag != "" {
			b.WriteByte('(')
			b.WriteString(s.tag)
			b.WriteByte(')')
		}
	}
	return b.String()
}

// at records that the error happened inside the index-th child, which has the
// given tag name ("" for non-elements).
func (e *Error) at(index int, tag string) *Error {
	e.steps = append(e.steps, step{index: index, tag: tag})
	return e
}

// IsStructural reports whether err is a render error caused by an invalid
// tree (bad names, children on a void element).
func IsStructural(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Structural()
}
