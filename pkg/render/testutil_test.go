package render

import (
	"testing"

	"github.com/vango-dev/treesite/pkg/node"
)

var (
	blockFormatting = node.Formatting{
		AutoNewlineForChildren:  true,
		PadNewlineAfterOpening:  true,
		PadNewlineBeforeClosing: true,
		AutoIndentForChildren:   true,
	}
	inlineFormatting = node.Formatting{
		PreventAutoNewlineBefore: true,
		PreventAutoNewlineAfter:  true,
	}
)

// element is a minimal open, expandable node used by the engine tests.
type element struct {
	tag      string
	format   node.Formatting
	children []any
	expands  int
	prepares int
	startErr error
}

func (e *element) RenderStart(node.Context) (string, error) {
	if e.startErr != nil {
		return "", e.startErr
	}
	return "<" + e.tag + ">", nil
}

func (e *element) RenderEnd(node.Context) (string, error) {
	return "</" + e.tag + ">", nil
}

func (e *element) Expand(node.Context) ([]any, error) {
	e.expands++
	return append([]any(nil), e.children...), nil
}

func (e *element) Prepare(node.Context) error {
	e.prepares++
	return nil
}

func (e *element) Formatting() node.Formatting {
	return e.format
}

func div(children ...any) *element {
	return &element{tag: "div", format: blockFormatting, children: children}
}

func p(children ...any) *element {
	return &element{tag: "p", children: children}
}

func span(children ...any) *element {
	return &element{tag: "span", format: inlineFormatting, children: children}
}

// meta is a closed node rendering its attributes.
type meta struct {
	attrs node.Attributes
}

func (m meta) Render(node.Context) (string, error) {
	attrs, err := node.RenderAttributes(m.attrs, true)
	if err != nil {
		return "", err
	}
	return "<meta " + attrs + ">", nil
}

// plain has no render capability.
type plain struct{}

func mustRender(t testing.TB, result any) string {
	t.Helper()
	ctx := node.NewContext("/")
	tree, err := Expand(result, ctx)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	out, err := tree.Render(ctx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}
