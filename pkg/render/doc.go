// Package render turns build results into markup.
//
// Rendering happens in two walks over a page:
//
//   - Expand resolves a build result (strings, nodes, callables and
//     nested slices of them) into a materialized *Node tree, calling
//     Expand on every node.Expandable exactly once.
//   - Render serializes that tree, applying each node's formatting policy
//     for automatic newlines and indentation.
//
// Both walks use explicit stacks, so neither depth nor width of a tree is
// bounded by the goroutine stack.
//
// # Basic Usage
//
//	tree, err := render.Expand(page, ctx)
//	if err != nil {
//	    return err
//	}
//	out, err := tree.Render(ctx)
//
// To change the root indentation unit:
//
//	r := render.New(render.Options{Indent: "\t"})
//	out, err := r.Render(tree, ctx)
//
// The engines hold no shared state. Independent trees may be expanded and
// rendered concurrently; a single tree must not.
package render
