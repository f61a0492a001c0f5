package el

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/vango-dev/el/pkg/markup"
)

// attr creates an Attr with the given name and value.
func attr(name, value string) Attr { return markup.Attribute(name, value) }

// flag creates a value-less boolean attribute.
func flag(name string) Attr { return markup.Flag(name) }

// boolString renders enumerated true/false attributes (aria-*, draggable).
func boolString(b bool) string { return strconv.FormatBool(b) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Several Class attributes on one element are all rendered; they are not merged.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with StyleEl).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Aria creates an aria-* attribute.
func Aria(key, value string) Attr { return attr("aria-"+key, value) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", boolString(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", boolString(expanded)) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return attr("aria-describedby", id) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// Keyboard attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", strconv.Itoa(index)) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return flag("hidden") }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Behavior attributes

// ContentEditable sets the contenteditable attribute.
func ContentEditable(editable bool) Attr { return attr("contenteditable", boolString(editable)) }

// Draggable sets the draggable attribute.
func Draggable() Attr { return attr("draggable", "true") }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return attr("dir", dir) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Download sets the download attribute, optionally with a file name.
func Download(filename ...string) Attr {
	if len(filename) > 0 {
		return attr("download", filename[0])
	}
	return flag("download")
}

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Form state attributes

// Disabled sets the disabled attribute.
func Disabled() Attr { return flag("disabled") }

// Readonly sets the readonly attribute.
func Readonly() Attr { return flag("readonly") }

// Required sets the required attribute.
func Required() Attr { return flag("required") }

// Checked sets the checked attribute.
func Checked() Attr { return flag("checked") }

// Selected sets the selected attribute.
func Selected() Attr { return flag("selected") }

// Multiple sets the multiple attribute.
func Multiple() Attr { return flag("multiple") }

// Autofocus sets the autofocus attribute.
func Autofocus() Attr { return flag("autofocus") }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) Attr { return attr("autocomplete", value) }

// Form validation attributes

// Pattern sets the pattern attribute.
func Pattern(pattern string) Attr { return attr("pattern", pattern) }

// MinLength sets the minlength attribute.
func MinLength(n int) Attr { return attr("minlength", strconv.Itoa(n)) }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) Attr { return attr("maxlength", strconv.Itoa(n)) }

// Min sets the min attribute.
func Min(value string) Attr { return attr("min", value) }

// Max sets the max attribute.
func Max(value string) Attr { return attr("max", value) }

// Step sets the step attribute.
func Step(value string) Attr { return attr("step", value) }

// Textarea attributes

// Rows sets the rows attribute.
func Rows(n int) Attr { return attr("rows", strconv.Itoa(n)) }

// Cols sets the cols attribute.
func Cols(n int) Attr { return attr("cols", strconv.Itoa(n)) }

// Form element attributes

// Action sets the action attribute.
func Action(url string) Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return attr("method", method) }

// Enctype sets the enctype attribute.
func Enctype(enctype string) Attr { return attr("enctype", enctype) }

// Novalidate sets the novalidate attribute.
func Novalidate() Attr { return flag("novalidate") }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// FormAttr sets the form attribute (to associate with a form by id).
func FormAttr(id string) Attr { return attr("form", id) }

// LabelAttr sets the label attribute (named to avoid conflict with Label element).
func LabelAttr(label string) Attr { return attr("label", label) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", strconv.Itoa(h)) }

// Loading sets the loading attribute.
func Loading(mode string) Attr { return attr("loading", mode) }

// Srcset sets the srcset attribute.
func Srcset(srcset string) Attr { return attr("srcset", srcset) }

// Controls sets the controls attribute.
func Controls() Attr { return flag("controls") }

// Autoplay sets the autoplay attribute.
func Autoplay() Attr { return flag("autoplay") }

// Loop sets the loop attribute.
func Loop() Attr { return flag("loop") }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return attr("colspan", strconv.Itoa(n)) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attr { return attr("rowspan", strconv.Itoa(n)) }

// Scope sets the scope attribute.
func Scope(scope string) Attr { return attr("scope", scope) }

// Meta/Link attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// ContentAttr sets the content attribute (named to avoid conflict with the Content type).
func ContentAttr(content string) Attr { return attr("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) Attr { return attr("http-equiv", value) }

// Script attributes

// Defer_ sets the defer attribute for script elements.
func Defer_() Attr { return flag("defer") }

// Async sets the async attribute for script elements.
func Async() Attr { return flag("async") }

// Integrity sets the integrity attribute for subresource integrity.
func Integrity(value string) Attr { return attr("integrity", value) }

// Crossorigin sets the crossorigin attribute.
func Crossorigin(value string) Attr { return attr("crossorigin", value) }

// Open sets the open attribute (for details, dialog).
func Open() Attr { return flag("open") }

// Conditional attributes

// AttrIf adds an attribute only when condition is true.
func AttrIf(condition bool, a Attr) Component {
	if condition {
		return a
	}
	return Components(nil)
}

// ClassIf adds a class attribute only when condition is true.
func ClassIf(condition bool, class string) Component {
	return AttrIf(condition, attr("class", class))
}

// Classes builds one class attribute from static class names and a map of
// conditional ones. Map entries are added in sorted order so the output is
// deterministic.
func Classes(static []string, conditional map[string]bool) Attr {
	result := make([]string, 0, len(static)+len(conditional))
	for _, c := range static {
		if c != "" {
			result = append(result, c)
		}
	}
	for _, c := range slices.Sorted(maps.Keys(conditional)) {
		if conditional[c] && c != "" {
			result = append(result, c)
		}
	}
	return attr("class", strings.Join(result, " "))
}
