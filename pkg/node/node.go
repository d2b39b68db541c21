package node

// Closed is a value that renders to one atomic string.
type Closed interface {
	Render(ctx Context) (string, error)
}

// Open is a value that wraps the rendered content of its children.
// RenderStart and RenderEnd are called exactly once each, in that order.
type Open interface {
	RenderStart(ctx Context) (string, error)
	RenderEnd(ctx Context) (string, error)
}

// Expandable is a value whose children are produced on demand. The
// returned content replaces any children the value declared before
// expansion.
type Expandable interface {
	Expand(ctx Context) ([]any, error)
}

// Preparable is a value with a setup hook that runs once per build,
// before expansion.
type Preparable interface {
	Prepare(ctx Context) error
}

// Formatted is implemented by values that override the default
// (all off) formatting policy.
type Formatted interface {
	Formatting() Formatting
}

// Formatting is the newline and indentation policy of a node, seen from
// the rendering engine. The zero value disables everything.
type Formatting struct {
	// AutoNewlineForChildren inserts a newline before every child except
	// the first.
	AutoNewlineForChildren bool

	// PadNewlineAfterOpening inserts a newline after the start tag when
	// the children render to non-empty content.
	PadNewlineAfterOpening bool

	// PadNewlineBeforeClosing inserts a newline before the end tag when
	// the children render to non-empty content.
	PadNewlineBeforeClosing bool

	// PreventAutoNewlineBefore suppresses the newline the parent would
	// insert before this node.
	PreventAutoNewlineBefore bool

	// PreventAutoNewlineAfter suppresses the newline the parent would
	// insert before the next sibling.
	PreventAutoNewlineAfter bool

	// AutoIndentForChildren indents every line of the children's output.
	AutoIndentForChildren bool

	// IndentString is the unit repeated once per depth level for the
	// children. Empty inherits the parent's indent string.
	IndentString string
}

// FormattingOf returns the formatting policy of v, or the zero policy if
// v does not implement Formatted.
func FormattingOf(v any) Formatting {
	if f, ok := v.(Formatted); ok {
		return f.Formatting()
	}
	return Formatting{}
}

// Func is deferred content. The expansion engine calls it with the build
// context and processes whatever it returns in its place.
type Func func(ctx Context) (any, error)

// IsRenderable reports whether v implements Open or Closed.
func IsRenderable(v any) bool {
	switch v.(type) {
	case Open, Closed:
		return true
	}
	return false
}
