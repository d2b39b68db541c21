package html

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/render"
)

func renderString(t *testing.T, result any) string {
	t.Helper()
	ctx := node.NewContext("/")
	tree, err := render.Expand(result, ctx)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	out, err := tree.Render(ctx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestElements(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected string
	}{
		{
			name:     "meta charset",
			node:     Meta(Charset("utf-8")),
			expected: `<meta charset="utf-8">`,
		},
		{
			name:     "div with paragraph",
			node:     Div(P("hi")),
			expected: "<div>\n  <p>hi</p>\n</div>",
		},
		{
			name:     "empty div",
			node:     Div(),
			expected: "<div></div>",
		},
		{
			name:     "attribute order",
			node:     A(Href("/x"), TitleAttr("t"), Class("a", "b"), ID("l"), "link"),
			expected: `<a id="l" class="a b" title="t" href="/x">link</a>`,
		},
		{
			name:     "nil arguments ignored",
			node:     P(nil, "x", nil),
			expected: "<p>x</p>",
		},
		{
			name:     "boolean attributes",
			node:     Input(Type("checkbox"), Checked(), BoolAttr("disabled", false)),
			expected: `<input checked type="checkbox">`,
		},
		{
			name:     "text escaped",
			node:     P("a < b & c"),
			expected: "<p>a &lt; b &amp; c</p>",
		},
		{
			name:     "inline flow",
			node:     P("Some ", Em("emphasized"), " text."),
			expected: "<p>Some <em>emphasized</em> text.</p>",
		},
		{
			name:     "inline inside block",
			node:     Div("a", Span("b"), "c"),
			expected: "<div>\n  a<span>b</span>c\n</div>",
		},
		{
			name:     "list",
			node:     Ul(Li("one"), Li("two")),
			expected: "<ul>\n  <li>\n    one\n  </li>\n  <li>\n    two\n  </li>\n</ul>",
		},
		{
			name:     "pre keeps whitespace",
			node:     Div(Pre("line 1\nline 2")),
			expected: "<div>\n  <pre>line 1\nline 2</pre>\n</div>",
		},
		{
			name:     "attrs map",
			node:     Span(Attrs{"data-x": "1", "id": "s"}),
			expected: `<span id="s" data-x="1"></span>`,
		},
		{
			name:     "attr slice",
			node:     Img([]Attr{Src("/a.png"), Alt(`a "b"`)}),
			expected: `<img alt="a &quot;b&quot;" src="/a.png">`,
		},
		{
			name:     "aria hidden keeps value",
			node:     Span(AriaHidden(false)),
			expected: `<span aria-hidden="false"></span>`,
		},
		{
			name:     "string slice child",
			node:     P([]string{"a", "b"}),
			expected: "<p>ab</p>",
		},
		{
			name:     "doctype",
			node:     Doctype(),
			expected: "<!doctype html>",
		},
		{
			name:     "comment",
			node:     Comment("a -- b --- c"),
			expected: "<!--a - - b - - - c-->",
		},
		{
			name:     "comment starting with >",
			node:     Comment(">x"),
			expected: "<!-- >x-->",
		},
		{
			name:     "comment starting with ->",
			node:     Comment("->x"),
			expected: "<!-- ->x-->",
		},
		{
			name:     "comment ending with -",
			node:     Comment("x-"),
			expected: "<!--x- -->",
		},
		{
			name:     "nil element child",
			node:     Div((*Element)(nil), P("a"), (*VoidElement)(nil)),
			expected: "<div>\n  <p>a</p>\n</div>",
		},
		{
			name:     "custom element",
			node:     CustomElement("x-card", Div()),
			expected: "<x-card>\n  <div></div>\n</x-card>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, tt.node)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInvalidAttributeName(t *testing.T) {
	ctx := node.NewContext("/")
	tree, err := render.Expand(Div(Attribute("on click", "x")), ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := tree.Render(ctx)
	if !errors.Is(err, node.ErrInvalidAttributeName) {
		t.Fatalf("expected ErrInvalidAttributeName, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestEmptyAttributeName(t *testing.T) {
	ctx := node.NewContext("/")
	for name, el := range map[string]any{
		"element": Div(Attr{Key: ""}),
		"void":    Br(Attr{Key: "", Value: "x"}),
	} {
		t.Run(name, func(t *testing.T) {
			tree, err := render.Expand(el, ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := tree.Render(ctx); !errors.Is(err, node.ErrInvalidAttributeName) {
				t.Fatalf("expected ErrInvalidAttributeName, got %v", err)
			}
		})
	}
}

func TestEscapingOverrides(t *testing.T) {
	got := renderString(t, P(Attribute("data-q", "a&b"), "x & y").EscapeAmpersands(false))
	if got != `<p data-q="a&b">x & y</p>` {
		t.Errorf("got %q", got)
	}

	got = renderString(t, Div("<b>").EscapeTagDelimiters(false).SetMode(ModePhrase))
	if got != "<div><b></div>" {
		t.Errorf("got %q", got)
	}
}

func TestScriptAndStyle(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected string
	}{
		{
			name:     "script keeps delimiters",
			node:     Script("if (a < b && c > d) {}"),
			expected: "<script>if (a < b &amp;&amp; c > d) {}</script>",
		},
		{
			name:     "script end tag rewritten",
			node:     Script(`document.write("</script>")`),
			expected: `<script>document.write("\x3C/script>")</script>`,
		},
		{
			name:     "script comment and start tag rewritten",
			node:     Script("<!-- <script>"),
			expected: `<script>\x3C!-- \x3Cscript></script>`,
		},
		{
			name:     "style end tags rewritten",
			node:     Style("a::after { content: '</style></script>' }"),
			expected: `<style>a::after { content: '\3C/style>\3C/script>' }</style>`,
		},
		{
			name:     "style with child selector",
			node:     Style("ul > li { margin: 0 }"),
			expected: "<style>ul > li { margin: 0 }</style>",
		},
		{
			name:     "script src",
			node:     Script(Src("/app.js"), Defer()),
			expected: `<script defer src="/app.js"></script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, tt.node)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestModes(t *testing.T) {
	tests := []struct {
		node *Element
		mode Mode
	}{
		{Div(), ModeBlock},
		{P(), ModePhrase},
		{H1(), ModePhrase},
		{Title(), ModePhrase},
		{Span(), ModeInline},
		{A(), ModeInline},
		{Pre(), ModePre},
		{Textarea(), ModePre},
		{Script(), ModePre},
	}

	for _, tt := range tests {
		if tt.node.Mode() != tt.mode {
			t.Errorf("<%s> mode = %s, want %s", tt.node.Tag(), tt.node.Mode(), tt.mode)
		}
	}

	f := Span().SetFormatting(node.Formatting{AutoNewlineForChildren: true}).Formatting()
	if f != (node.Formatting{AutoNewlineForChildren: true}) {
		t.Errorf("formatting override not applied: %+v", f)
	}
}

// counting records prepare calls.
type counting struct {
	node.Raw
	calls int
}

func (c *counting) Prepare(node.Context) error {
	c.calls++
	return nil
}

func TestPrepareForwardsToChildren(t *testing.T) {
	c := &counting{Raw: "x"}
	tree := Div(Section([]any{c}))

	if err := render.Prepare(tree, node.NewContext("/")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.calls != 1 {
		t.Errorf("prepare called %d times, want 1", c.calls)
	}
}

func TestExpandReturnsDeclaredChildren(t *testing.T) {
	e := Div(ID("x"), "a", Span("b"))
	children, err := e.Expand(node.NewContext("/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if text, ok := children[0].(*node.Text); !ok || text.Content() != "a" {
		t.Errorf("first child = %#v, want text", children[0])
	}

	children[1] = nil
	if e.Children()[1] == nil {
		t.Errorf("expansion shares storage with declared children")
	}
}

func TestAttributeHelpers(t *testing.T) {
	e := Div(Data("id", "7"), Aria("label", "Main"), Attribute("x", nil))
	want := node.Attributes{"data-id": "7", "aria-label": "Main", "x": nil}
	if diff := cmp.Diff(want, e.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}

	e.RemoveAttribute("x").SetAttribute("role", "main")
	if _, ok := e.Attributes()["x"]; ok {
		t.Errorf("attribute not removed")
	}
}
