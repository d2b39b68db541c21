package render

import (
	"fmt"
	"strings"

	"github.com/vango-dev/treesite/pkg/node"
)

// DefaultIndent is the indentation unit used when no node overrides it.
const DefaultIndent = "  "

// Options configures a Renderer.
type Options struct {
	// Indent is the root indentation unit. Defaults to DefaultIndent.
	Indent string
}

// Renderer serializes expanded trees.
type Renderer struct {
	indent string
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Renderer{indent: opts.Indent}
}

// Render serializes n with the default options.
func (n *Node) Render(ctx node.Context) (string, error) {
	return New(Options{}).Render(n, ctx)
}

// visit is a pending step of the render walk. Open nodes are visited twice:
// once to emit the start tag and once, revisited, to emit the end tag.
type visit struct {
	n         *Node
	revisited bool
}

// walk holds the state threaded through one render.
type walk struct {
	ctx node.Context

	depth      int
	noNewline  int
	noIndent   int
	indents    []string
	firstChild bool
	blocked    bool
	current    []string
	parentBufs [][]string
}

// Render serializes tree to a string. Any error returned by a node aborts
// the render and no output is returned.
func (r *Renderer) Render(tree *Node, ctx node.Context) (string, error) {
	if tree == nil {
		return "", nil
	}

	w := &walk{
		ctx:        ctx,
		indents:    []string{r.indent},
		firstChild: true,
	}

	stack := []visit{{n: tree}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := top.n.Value
		switch val := v.(type) {
		case node.Open:
			if top.revisited {
				if err := w.exit(val); err != nil {
					return "", err
				}
				continue
			}
			if err := w.enter(val); err != nil {
				return "", err
			}
			stack = append(stack, visit{n: top.n, revisited: true})
		case node.Closed:
			if err := w.closed(val); err != nil {
				return "", err
			}
		case nil:
			w.blocked = false
		default:
			return "", fmt.Errorf("%w: %T", node.ErrNonRenderable, v)
		}

		for i := len(top.n.Children) - 1; i >= 0; i-- {
			stack = append(stack, visit{n: top.n.Children[i]})
		}
	}

	return strings.Join(w.current, ""), nil
}

func (w *walk) indent() string {
	return w.indents[len(w.indents)-1]
}

// leading applies the newline and indentation rules shared by start tags
// and closed nodes.
func (w *walk) leading(text string, f node.Formatting) string {
	if text == "" {
		return text
	}
	if !w.firstChild && w.noNewline == 0 && !f.PreventAutoNewlineBefore && !w.blocked {
		text = "\n" + text
	}
	if w.noIndent == 0 {
		text = reindent(text, w.indent(), w.depth)
	}
	return text
}

func (w *walk) enter(v node.Open) error {
	f := node.FormattingOf(v)

	text, err := v.RenderStart(w.ctx)
	if err != nil {
		return fmt.Errorf("render start %T: %w", v, err)
	}
	w.current = append(w.current, w.leading(text, f))
	w.parentBufs = append(w.parentBufs, w.current)
	w.current = nil

	if !f.AutoNewlineForChildren {
		w.noNewline++
	}
	if !f.AutoIndentForChildren {
		w.noIndent++
	}

	w.depth++
	w.firstChild = true
	w.blocked = false

	indent := f.IndentString
	if indent == "" {
		indent = w.indent()
	}
	w.indents = append(w.indents, indent)
	return nil
}

func (w *walk) exit(v node.Open) error {
	f := node.FormattingOf(v)

	children := strings.Join(w.current, "")
	if children != "" && w.noNewline == 0 && f.PadNewlineAfterOpening {
		if w.noIndent == 0 {
			children = "\n" + strings.Repeat(w.indent(), w.depth) + children
		} else {
			children = "\n" + children
		}
	}

	w.depth--
	w.current = w.parentBufs[len(w.parentBufs)-1]
	w.parentBufs = w.parentBufs[:len(w.parentBufs)-1]
	w.current = append(w.current, children)

	text, err := v.RenderEnd(w.ctx)
	if err != nil {
		return fmt.Errorf("render end %T: %w", v, err)
	}
	if text != "" && w.noNewline == 0 && f.PadNewlineBeforeClosing && children != "" {
		text = "\n" + text
	}

	if !f.AutoNewlineForChildren {
		w.noNewline--
	}
	if !f.AutoIndentForChildren {
		w.noIndent--
	}
	if w.noIndent == 0 && text != "" {
		text = reindent(text, w.indent(), w.depth)
	}
	w.current = append(w.current, text)

	w.firstChild = false
	w.blocked = f.PreventAutoNewlineAfter
	w.indents = w.indents[:len(w.indents)-1]
	return nil
}

func (w *walk) closed(v node.Closed) error {
	f := node.FormattingOf(v)

	text, err := v.Render(w.ctx)
	if err != nil {
		return fmt.Errorf("render %T: %w", v, err)
	}
	w.current = append(w.current, w.leading(text, f))

	w.firstChild = false
	w.blocked = f.PreventAutoNewlineAfter
	return nil
}

// reindent follows every newline in text with unit repeated depth times.
func reindent(text, unit string, depth int) string {
	if depth == 0 || unit == "" || !strings.Contains(text, "\n") {
		return text
	}
	return strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(unit, depth))
}
