package render

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vango-dev/treesite/pkg/node"
)

// nest wraps each word in a shape chosen by its index, so generated inputs
// mix slices, callables and expandable nodes.
func nest(words []string) any {
	out := make([]any, 0, len(words))
	for i, w := range words {
		w := w
		switch i % 4 {
		case 0:
			out = append(out, w)
		case 1:
			out = append(out, []any{[]any{w}})
		case 2:
			out = append(out, func(node.Context) any { return w })
		case 3:
			out = append(out, &element{tag: "e", children: []any{w}})
		}
	}
	return out
}

func TestExpandProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("leaves follow the flattened input order", prop.ForAll(
		func(words []string) bool {
			tree, err := Expand(nest(words), node.NewContext("/"))
			if err != nil {
				return false
			}
			leaves := tree.Leaves()
			if len(leaves) != len(words) {
				return false
			}
			for i, v := range leaves {
				text, ok := v.(*node.Text)
				if !ok || text.Content() != words[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString().SuchThat(func(s string) bool { return s != "" })),
	))

	properties.Property("paragraph content never gains newlines", prop.ForAll(
		func(words []string) bool {
			tree, err := Expand(p(nest(words)), node.NewContext("/"))
			if err != nil {
				return false
			}
			got, err := tree.Render(nil)
			if err != nil {
				return false
			}
			return strings.HasPrefix(got, "<p>") &&
				strings.HasSuffix(got, "</p>") &&
				!strings.Contains(got, "\n")
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
