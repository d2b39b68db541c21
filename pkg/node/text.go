package node

// Text is a leaf holding character data.
type Text struct {
	content             string
	escapeAmpersands    bool
	escapeTagDelimiters bool
}

// NewText returns a text node that escapes &, < and >.
func NewText(content string) *Text {
	return &Text{
		content:             content,
		escapeAmpersands:    true,
		escapeTagDelimiters: true,
	}
}

// Content returns the unescaped text.
func (t *Text) Content() string {
	return t.content
}

// SetEscapeAmpersands toggles escaping of '&'.
func (t *Text) SetEscapeAmpersands(on bool) *Text {
	t.escapeAmpersands = on
	return t
}

// SetEscapeTagDelimiters toggles escaping of '<' and '>'.
func (t *Text) SetEscapeTagDelimiters(on bool) *Text {
	t.escapeTagDelimiters = on
	return t
}

// Render implements Closed.
func (t *Text) Render(Context) (string, error) {
	return EscapeText(t.content, t.escapeAmpersands, t.escapeTagDelimiters), nil
}

// Raw is trusted markup emitted verbatim.
type Raw string

// Render implements Closed.
func (r Raw) Render(Context) (string, error) {
	return string(r), nil
}
