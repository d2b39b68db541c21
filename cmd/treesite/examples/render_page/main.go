// Example program: render a page without defining a site.
//
// Running this program prints an HTML document to standard output.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/vango-dev/treesite/pkg/html"
	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/site"
)

type mainPage struct{}

func (mainPage) Body(node.Context) any {
	return html.Div(
		html.H1("Main Page"),
		html.P("Welcome to treesite!"),
	)
}

func main() {
	out, err := site.RenderPage(context.Background(), mainPage{}, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}
