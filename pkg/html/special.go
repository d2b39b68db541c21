package html

import (
	"strings"

	"github.com/vango-dev/treesite/pkg/node"
)

// DoctypeNode is the HTML5 document type declaration.
type DoctypeNode struct{}

// Doctype returns the HTML5 document type declaration.
func Doctype() DoctypeNode { return DoctypeNode{} }

// Render implements node.Closed.
func (DoctypeNode) Render(node.Context) (string, error) {
	return "<!doctype html>", nil
}

// CommentNode is an HTML comment.
type CommentNode struct {
	text string
}

// Comment returns an HTML comment. Any "--" in text is broken up, and a
// leading ">" or "->" or a trailing "-" is padded with a space, so the
// comment cannot terminate early.
func Comment(text string) CommentNode {
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	if strings.HasPrefix(text, ">") || strings.HasPrefix(text, "->") {
		text = " " + text
	}
	if strings.HasSuffix(text, "-") {
		text += " "
	}
	return CommentNode{text: text}
}

// Render implements node.Closed.
func (c CommentNode) Render(node.Context) (string, error) {
	return "<!--" + c.text + "-->", nil
}

// Text returns a text node, for building content that needs escaping
// toggles.
func Text(s string) *node.Text { return node.NewText(s) }

// Raw returns trusted markup emitted verbatim.
func Raw(s string) node.Raw { return node.Raw(s) }
