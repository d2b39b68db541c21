package html

import (
	"strings"

	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/render"
)

// Element is an HTML element with a start tag, children and an end tag.
type Element struct {
	tag      string
	attrs    node.Attributes
	children []any
	mode     Mode

	escapeAmpersands    *bool
	escapeTagDelimiters *bool
	formatting          *node.Formatting

	// filter rewrites string children before they become text.
	filter func(string) string
}

// NewElement creates an element with any tag. Arguments are handled as by
// the catalog constructors.
func NewElement(tag string, mode Mode, args ...any) *Element {
	e := &Element{
		tag:   tag,
		attrs: make(node.Attributes),
		mode:  mode,
	}
	e.children = collect(e.attrs, args)
	return e
}

// collect records attribute arguments on attrs and returns the rest as
// children. nil arguments are dropped.
func collect(attrs node.Attributes, args []any) []any {
	var children []any
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			applyAttribute(attrs, v)
		case []Attr:
			for _, a := range v {
				applyAttribute(attrs, a)
			}
		case Attrs:
			for k, val := range v {
				applyAttribute(attrs, Attr{Key: k, Value: val})
			}
		case node.Attributes:
			for k, val := range v {
				applyAttribute(attrs, Attr{Key: k, Value: val})
			}
		default:
			children = append(children, v)
		}
	}
	return children
}

// Tag returns the element name.
func (e *Element) Tag() string { return e.tag }

// Mode returns the render mode.
func (e *Element) Mode() Mode { return e.mode }

// Attributes returns the element's attributes. The map is live.
func (e *Element) Attributes() node.Attributes { return e.attrs }

// Children returns the declared children.
func (e *Element) Children() []any { return e.children }

// SetAttribute sets one attribute and returns e.
func (e *Element) SetAttribute(name string, value any) *Element {
	e.attrs[name] = value
	return e
}

// RemoveAttribute deletes one attribute and returns e.
func (e *Element) RemoveAttribute(name string) *Element {
	delete(e.attrs, name)
	return e
}

// Append adds children, handling attribute arguments like the
// constructors do.
func (e *Element) Append(args ...any) *Element {
	e.children = append(e.children, collect(e.attrs, args)...)
	return e
}

// SetMode changes the render mode.
func (e *Element) SetMode(m Mode) *Element {
	e.mode = m
	return e
}

// SetFormatting replaces the policy derived from the mode.
func (e *Element) SetFormatting(f node.Formatting) *Element {
	e.formatting = &f
	return e
}

// EscapeAmpersands controls '&' escaping in attribute values and in string
// children.
func (e *Element) EscapeAmpersands(on bool) *Element {
	e.escapeAmpersands = &on
	return e
}

// EscapeTagDelimiters controls '<' and '>' escaping in string children.
func (e *Element) EscapeTagDelimiters(on bool) *Element {
	e.escapeTagDelimiters = &on
	return e
}

// Formatting implements node.Formatted.
func (e *Element) Formatting() node.Formatting {
	if e.formatting != nil {
		return *e.formatting
	}
	return e.mode.Formatting()
}

// RenderStart implements node.Open.
func (e *Element) RenderStart(node.Context) (string, error) {
	return startTag(e.tag, e.attrs, e.ampersands())
}

// RenderEnd implements node.Open.
func (e *Element) RenderEnd(node.Context) (string, error) {
	return "</" + e.tag + ">", nil
}

// Prepare implements node.Preparable by preparing the declared children.
func (e *Element) Prepare(ctx node.Context) error {
	return render.Prepare(e.children, ctx)
}

// Expand implements node.Expandable. String children become text nodes
// carrying the element's escaping overrides.
func (e *Element) Expand(node.Context) ([]any, error) {
	out := make([]any, 0, len(e.children))
	for _, c := range e.children {
		switch v := c.(type) {
		case string:
			out = append(out, e.text(v))
		case []string:
			for _, s := range v {
				out = append(out, e.text(s))
			}
		default:
			out = append(out, c)
		}
	}
	return out, nil
}

func (e *Element) text(s string) *node.Text {
	if e.filter != nil {
		s = e.filter(s)
	}
	t := node.NewText(s)
	if e.escapeAmpersands != nil {
		t.SetEscapeAmpersands(*e.escapeAmpersands)
	}
	if e.escapeTagDelimiters != nil {
		t.SetEscapeTagDelimiters(*e.escapeTagDelimiters)
	}
	return t
}

func (e *Element) ampersands() bool {
	return e.escapeAmpersands == nil || *e.escapeAmpersands
}

// VoidElement is an element with no end tag and no children.
type VoidElement struct {
	tag        string
	attrs      node.Attributes
	formatting *node.Formatting

	escapeAmpersands bool
}

// NewVoidElement creates a void element. Arguments other than attributes
// are ignored.
func NewVoidElement(tag string, args ...any) *VoidElement {
	e := &VoidElement{
		tag:              tag,
		attrs:            make(node.Attributes),
		escapeAmpersands: true,
	}
	collect(e.attrs, args)
	return e
}

// Tag returns the element name.
func (e *VoidElement) Tag() string { return e.tag }

// Attributes returns the element's attributes. The map is live.
func (e *VoidElement) Attributes() node.Attributes { return e.attrs }

// SetAttribute sets one attribute and returns e.
func (e *VoidElement) SetAttribute(name string, value any) *VoidElement {
	e.attrs[name] = value
	return e
}

// EscapeAmpersands controls '&' escaping in attribute values.
func (e *VoidElement) EscapeAmpersands(on bool) *VoidElement {
	e.escapeAmpersands = on
	return e
}

// SetFormatting sets the element's policy. Void elements default to the
// zero policy.
func (e *VoidElement) SetFormatting(f node.Formatting) *VoidElement {
	e.formatting = &f
	return e
}

// Formatting implements node.Formatted.
func (e *VoidElement) Formatting() node.Formatting {
	if e.formatting != nil {
		return *e.formatting
	}
	return node.Formatting{}
}

// Render implements node.Closed.
func (e *VoidElement) Render(node.Context) (string, error) {
	return startTag(e.tag, e.attrs, e.escapeAmpersands)
}

func startTag(tag string, attrs node.Attributes, ampersands bool) (string, error) {
	rendered, err := node.RenderAttributes(attrs, ampersands)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(tag) + len(rendered) + 3)
	b.WriteByte('<')
	b.WriteString(tag)
	if rendered != "" {
		b.WriteByte(' ')
		b.WriteString(rendered)
	}
	b.WriteByte('>')
	return b.String(), nil
}
