package render

// Node is one position in an expanded document tree. The root returned by
// Expand carries a nil Value.
type Node struct {
	Value    any
	Children []*Node

	parent *Node
}

// NewNode returns a detached node holding v.
func NewNode(v any, children ...*Node) *Node {
	n := &Node{Value: v}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// Append attaches c as the last child of n.
func (n *Node) Append(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Parent returns the node c was attached to, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Leaves returns the values of every childless node in document order,
// excluding the root itself.
func (n *Node) Leaves() []any {
	var leaves []any
	stack := make([]*Node, 0, len(n.Children))
	for i := len(n.Children) - 1; i >= 0; i-- {
		stack = append(stack, n.Children[i])
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(top.Children) == 0 {
			leaves = append(leaves, top.Value)
			continue
		}
		for i := len(top.Children) - 1; i >= 0; i-- {
			stack = append(stack, top.Children[i])
		}
	}
	return leaves
}
