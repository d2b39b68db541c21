package html

import (
	"errors"
	"fmt"

	"github.com/vango-dev/treesite/pkg/node"
)

// ErrNoBody is returned by HTML5Layout for a page without a Body method.
var ErrNoBody = errors.New("page has no body")

// Layout turns a page into its build result.
type Layout interface {
	Build(page any, ctx node.Context) (any, error)
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(page any, ctx node.Context) (any, error)

// Build implements Layout.
func (f LayoutFunc) Build(page any, ctx node.Context) (any, error) {
	return f(page, ctx)
}

// Page is the content a layout wraps.
type Page interface {
	Body(ctx node.Context) any
}

// PageHead is implemented by pages contributing <head> content.
type PageHead interface {
	Head(ctx node.Context) any
}

// PageAttributes is implemented by pages setting attributes on <html>.
type PageAttributes interface {
	HTMLAttributes(ctx node.Context) node.Attributes
}

// HTML5Layout produces a doctype followed by an html element holding the
// page's head and body.
type HTML5Layout struct{}

// Build implements Layout.
func (HTML5Layout) Build(page any, ctx node.Context) (any, error) {
	p, ok := page.(Page)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoBody, page)
	}

	var head any
	if h, ok := page.(PageHead); ok {
		head = h.Head(ctx)
	}

	root := Html(Head(head), Body(p.Body(ctx)))
	if a, ok := page.(PageAttributes); ok {
		for k, v := range a.HTMLAttributes(ctx) {
			root.SetAttribute(k, v)
		}
	}

	return []any{Doctype(), root}, nil
}

// Document is a ready-made Page for simple sites.
type Document struct {
	Title       string
	Lang        string
	Description string
	Stylesheets []string

	// HeadContent is appended to the generated head elements.
	HeadContent []any
	BodyContent []any
}

// Head implements PageHead.
func (d *Document) Head(node.Context) any {
	head := []any{Meta(Charset("utf-8"))}
	head = append(head, Meta(Name("viewport"), Content("width=device-width, initial-scale=1")))
	if d.Title != "" {
		head = append(head, Title(d.Title))
	}
	if d.Description != "" {
		head = append(head, Meta(Name("description"), Content(d.Description)))
	}
	for _, href := range d.Stylesheets {
		head = append(head, Link(Rel("stylesheet"), Href(href)))
	}
	return append(head, d.HeadContent...)
}

// Body implements Page.
func (d *Document) Body(node.Context) any {
	return d.BodyContent
}

// HTMLAttributes implements PageAttributes.
func (d *Document) HTMLAttributes(node.Context) node.Attributes {
	if d.Lang == "" {
		return nil
	}
	return node.Attributes{"lang": d.Lang}
}
