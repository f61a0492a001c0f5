package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-dev/el/pkg/render"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender Category = "render"
	CategoryOutput Category = "output"
	CategoryCLI    Category = "cli"
)

// Error is a coded diagnostic.
type Error struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the tree path of the element being rendered, if known.
	Path string

	// Name is the offending tag or attribute name, if any.
	Name string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithPath sets the tree path.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithName sets the offending name.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithSuggestion replaces the hint.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates an Error with a formatted message and no code.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err under code. An *Error is returned unchanged.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err)
}

// FromRender converts an error returned by the renderer. Structural errors
// get the code of their sentinel, sink failures get CodeWriteFailed; both
// keep the path and name reported by the renderer.
func FromRender(err error) *Error {
	if err == nil {
		return nil
	}
	code := CodeWriteFailed
	switch {
	case stderrors.Is(err, render.ErrInvalidTagName):
		code = CodeInvalidTagName
	case stderrors.Is(err, render.ErrInvalidAttrName):
		code = CodeInvalidAttrName
	case stderrors.Is(err, render.ErrVoidContent):
		code = CodeVoidContent
	}
	e := New(code).Wrap(err)
	var re *render.Error
	if stderrors.As(err, &re) {
		e.Path = re.Path()
		e.Name = re.Name
	}
	return e
}

// CheckTagName returns a diagnostic if name cannot be rendered as a tag.
func CheckTagName(name string) *Error {
	if render.ValidTagName(name) {
		return nil
	}
	return New(CodeInvalidTagName).WithName(name)
}

// CheckAttrName returns a diagnostic if name cannot be rendered as an
// attribute name.
func CheckAttrName(name string) *Error {
	if render.ValidAttrName(name) {
		return nil
	}
	return New(CodeInvalidAttrName).WithName(name)
}
