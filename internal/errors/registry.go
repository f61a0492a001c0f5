package errors

import (
	"maps"
	"slices"
)

// Registered codes.
const (
	CodeInvalidTagName  = "E101"
	CodeInvalidAttrName = "E102"
	CodeVoidContent     = "E103"
	CodeWriteFailed     = "E104"

	CodeUnknownCommand = "E140"
	CodeInvalidArgs    = "E141"
	CodeInputFailed    = "E142"
)

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

var registry = map[string]Template{
	// Render errors (E100-E119)

	CodeInvalidTagName: {
		Category:   CategoryRender,
		Message:    "Invalid tag name",
		Detail:     "Tag names must start with an ASCII letter and contain only ASCII letters, digits, '-', '_', '.' or ':'.",
		Suggestion: "Check the name passed to El or CustomElement; custom elements need a hyphen, e.g. \"my-widget\".",
	},
	CodeInvalidAttrName: {
		Category:   CategoryRender,
		Message:    "Invalid attribute name",
		Detail:     "Attribute names must be non-empty and cannot contain whitespace, control characters, quotes, '=', '<', '>' or '/'.",
		Suggestion: "Put user-controlled data in attribute values, never in attribute names.",
	},
	CodeVoidContent: {
		Category:   CategoryRender,
		Message:    "Void element has children",
		Detail:     "Void elements such as img, br and input have no end tag and cannot contain content.",
		Suggestion: "Move the children next to the element, or use a non-void element.",
	},
	CodeWriteFailed: {
		Category:   CategoryOutput,
		Message:    "Writing output failed",
		Detail:     "The destination returned an error; output stopped at the first failed write and may be truncated.",
		Suggestion: "Check that the destination (file, connection, response) is still writable.",
	},

	// CLI errors (E140-E159)

	CodeUnknownCommand: {
		Category:   CategoryCLI,
		Message:    "Unknown command",
		Detail:     "The command or subcommand is not recognised.",
		Suggestion: "Run 'el help' to list the available commands.",
	},
	CodeInvalidArgs: {
		Category:   CategoryCLI,
		Message:    "Invalid arguments",
		Detail:     "The command was called with arguments it does not accept.",
	},
	CodeInputFailed: {
		Category:   CategoryCLI,
		Message:    "Reading input failed",
		Detail:     "Standard input could not be read.",
	},
}

// Codes returns all registered error codes in ascending order.
func Codes() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the template for an error code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
