// Example program: create a page in a directory.
//
// Running this program creates "index.html" in the "./out" directory.
package main

import (
	"context"
	"log"

	"github.com/vango-dev/treesite/pkg/html"
	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/site"
)

type mainPage struct{}

func (mainPage) Title() string { return "Main Page" }

func (mainPage) Body(node.Context) any {
	return html.Div(
		html.H1("Main Page"),
		html.P("Welcome to treesite!"),
	)
}

var defaultLayout = html.LayoutFunc(func(page any, ctx node.Context) (any, error) {
	p := page.(mainPage)
	return []any{
		html.Doctype(),
		html.Html(
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Title(p.Title()),
			),
			html.Body(p.Body(ctx)),
		),
	}, nil
})

func main() {
	s := site.New(
		site.WithDefaultLayout(defaultLayout),
		site.WithExportRoot("./out"),
	)
	if err := s.AddPage("/", mainPage{}); err != nil {
		log.Fatal(err)
	}
	if _, err := s.Build(context.Background()); err != nil {
		log.Fatal(err)
	}
}
