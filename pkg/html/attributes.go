package html

import (
	"strconv"
	"strings"

	"github.com/vango-dev/treesite/pkg/node"
)

// Attr is a single attribute argument to an element constructor.
type Attr struct {
	Key   string
	Value any
}

// Attrs is a set of attribute arguments.
type Attrs map[string]any

// Attribute returns an attribute with an arbitrary name. A nil value
// renders the bare name.
func Attribute(name string, value any) Attr { return Attr{Key: name, Value: value} }

// BoolAttr returns a boolean attribute, rendered as its bare name when on
// and omitted when off.
func BoolAttr(name string, on bool) Attr { return Attr{Key: name, Value: on} }

// Global attributes

func ID(id string) Attr { return Attribute("id", id) }

// Class joins the class names with spaces.
func Class(classes ...string) Attr { return Attribute("class", strings.Join(classes, " ")) }

func StyleAttr(style string) Attr { return Attribute("style", style) }
func TitleAttr(title string) Attr { return Attribute("title", title) }
func Lang(lang string) Attr       { return Attribute("lang", lang) }
func Dir(dir string) Attr         { return Attribute("dir", dir) }
func Hidden() Attr                { return BoolAttr("hidden", true) }
func TabIndex(index int) Attr     { return Attribute("tabindex", index) }
func Role(role string) Attr       { return Attribute("role", role) }

// Data returns a data-* attribute.
func Data(key, value string) Attr { return Attribute("data-"+key, value) }

// Aria returns an aria-* attribute.
func Aria(key, value string) Attr { return Attribute("aria-"+key, value) }

// AriaHidden is spelled out because aria-hidden takes "true" or "false"
// rather than behaving as a boolean attribute.
func AriaHidden(hidden bool) Attr { return Aria("hidden", strconv.FormatBool(hidden)) }

// Links and resources

func Href(url string) Attr       { return Attribute("href", url) }
func Rel(rel string) Attr        { return Attribute("rel", rel) }
func Target(target string) Attr  { return Attribute("target", target) }
func Src(url string) Attr        { return Attribute("src", url) }
func Alt(text string) Attr       { return Attribute("alt", text) }
func Width(w int) Attr           { return Attribute("width", w) }
func Height(h int) Attr          { return Attribute("height", h) }
func Loading(mode string) Attr   { return Attribute("loading", mode) }
func Srcset(srcset string) Attr  { return Attribute("srcset", srcset) }
func Async() Attr                { return BoolAttr("async", true) }
func Defer() Attr                { return BoolAttr("defer", true) }
func Integrity(hash string) Attr { return Attribute("integrity", hash) }

// Metadata

func Charset(charset string) Attr   { return Attribute("charset", charset) }
func Name(name string) Attr         { return Attribute("name", name) }
func Content(content string) Attr   { return Attribute("content", content) }
func HTTPEquiv(value string) Attr   { return Attribute("http-equiv", value) }
func Property(property string) Attr { return Attribute("property", property) }

// Forms

func Type(t string) Attr             { return Attribute("type", t) }
func Value(value string) Attr        { return Attribute("value", value) }
func Placeholder(text string) Attr   { return Attribute("placeholder", text) }
func Action(url string) Attr         { return Attribute("action", url) }
func Method(method string) Attr      { return Attribute("method", method) }
func For(id string) Attr             { return Attribute("for", id) }
func FormAttr(id string) Attr        { return Attribute("form", id) }
func Disabled() Attr                 { return BoolAttr("disabled", true) }
func Required() Attr                 { return BoolAttr("required", true) }
func Checked() Attr                  { return BoolAttr("checked", true) }
func Selected() Attr                 { return BoolAttr("selected", true) }
func Readonly() Attr                 { return BoolAttr("readonly", true) }
func Rows(n int) Attr                { return Attribute("rows", n) }
func Cols(n int) Attr                { return Attribute("cols", n) }
func Autocomplete(value string) Attr { return Attribute("autocomplete", value) }

// Tables

func Colspan(n int) Attr         { return Attribute("colspan", n) }
func Rowspan(n int) Attr         { return Attribute("rowspan", n) }
func Scope(scope string) Attr    { return Attribute("scope", scope) }
func DateTime(value string) Attr { return Attribute("datetime", value) }

// applyAttribute records attr on attrs. Names are validated when the
// start tag renders, so an empty key fails there.
func applyAttribute(attrs node.Attributes, attr Attr) {
	attrs[attr.Key] = attr.Value
}
