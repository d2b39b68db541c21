package render

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/treesite/pkg/node"
)

// frame is one entry of the expansion stack. A pop frame moves the cursor
// back to its parent once an expanded node's content is exhausted.
type frame struct {
	value any
	pop   bool
}

// Expand resolves result into a tree rooted at a valueless node.
//
// Strings become text leaves. Callables are invoked with ctx and their
// return value is processed in their place. Slices and arrays are
// flattened in order. A node.Expandable is expanded once, attached under
// the current cursor, and its expansion becomes its children, replacing
// whatever it declared. nil values, typed nil pointers included, are
// skipped. Anything else becomes a leaf.
func Expand(result any, ctx node.Context) (*Node, error) {
	root := &Node{}
	cursor := root

	stack := []frame{{value: result}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.pop {
			cursor = cursor.parent
			continue
		}

		switch v := f.value.(type) {
		case nil:
		case string:
			cursor.Append(&Node{Value: node.NewText(v)})
		case []byte:
			cursor.Append(&Node{Value: node.NewText(string(v))})
		case node.Func:
			r, err := v(ctx)
			if err != nil {
				return nil, err
			}
			stack = append(stack, frame{value: r})
		case func(node.Context) (any, error):
			r, err := v(ctx)
			if err != nil {
				return nil, err
			}
			stack = append(stack, frame{value: r})
		case func(node.Context) any:
			stack = append(stack, frame{value: v(ctx)})
		case func() any:
			stack = append(stack, frame{value: v()})
		case []any:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, frame{value: v[i]})
			}
		case []string:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, frame{value: v[i]})
			}
		default:
			if nilPointer(v) {
				continue
			}
			if items, ok := sequence(v); ok {
				for i := len(items) - 1; i >= 0; i-- {
					stack = append(stack, frame{value: items[i]})
				}
				continue
			}

			exp, ok := v.(node.Expandable)
			if !ok {
				cursor.Append(&Node{Value: v})
				continue
			}

			children, err := exp.Expand(ctx)
			if err != nil {
				return nil, fmt.Errorf("expand %T: %w", v, err)
			}
			n := &Node{Value: v}
			cursor.Append(n)
			cursor = n
			stack = append(stack, frame{pop: true}, frame{value: children})
		}
	}

	return root, nil
}

// nilPointer reports whether v is a nil pointer held in an interface.
func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// sequence reports whether v is a slice or array of a type without its own
// render or expand capability, returning its elements.
func sequence(v any) ([]any, bool) {
	switch v.(type) {
	case node.Open, node.Closed, node.Expandable:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
