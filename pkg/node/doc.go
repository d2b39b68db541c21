// Package node defines the capability set shared by every value that can
// appear in a treesite document tree.
//
// A value takes part in rendering by implementing exactly one of Closed
// (rendered in a single call) or Open (rendered as a start tag, its
// children, then an end tag). Independently it may implement Expandable,
// producing its children lazily, and Preparable, running a setup hook
// before expansion. Concrete element types compose the subset they need;
// there is no base type to embed.
//
// # Formatting
//
// Open and Closed values may implement Formatted to opt in to automatic
// newlines and indentation. Every flag in Formatting defaults to off:
//
//	type Section struct{ /* ... */ }
//
//	func (s *Section) Formatting() node.Formatting {
//	    return node.Formatting{
//	        AutoNewlineForChildren:  true,
//	        PadNewlineAfterOpening:  true,
//	        PadNewlineBeforeClosing: true,
//	        AutoIndentForChildren:   true,
//	    }
//	}
//
// # Attributes and text
//
// Attributes render in the fixed order id, class, style, title, followed
// by every other name in ascending order. Text escapes &, < and >;
// attribute values escape & and ". Ampersand escaping can be disabled
// per node.
package node
