package render

import (
	"fmt"

	"github.com/vango-dev/treesite/pkg/node"
)

// Prepare calls Prepare once on every node.Preparable at the top level of
// result, after flattening slices. Callables are not invoked; deferred
// content is prepared by whatever it produces at expansion time, if at
// all. Elements forward Prepare to their own declared children.
func Prepare(result any, ctx node.Context) error {
	stack := []any{result}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := v.(type) {
		case nil, string, []byte:
			continue
		case []any:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, v[i])
			}
			continue
		}

		if nilPointer(v) {
			continue
		}
		if items, ok := sequence(v); ok {
			for i := len(items) - 1; i >= 0; i-- {
				stack = append(stack, items[i])
			}
			continue
		}

		if p, ok := v.(node.Preparable); ok {
			if err := p.Prepare(ctx); err != nil {
				return fmt.Errorf("prepare %T: %w", v, err)
			}
		}
	}
	return nil
}
