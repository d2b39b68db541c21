package html

import "github.com/vango-dev/treesite/pkg/node"

// Mode selects the formatting policy of an element.
type Mode int

const (
	// ModeBlock renders each child on its own line, indented one level.
	ModeBlock Mode = iota

	// ModePhrase renders children inline; the element itself still starts
	// on a new line inside a block parent.
	ModePhrase

	// ModeInline renders children inline and never breaks the line around
	// the element.
	ModeInline

	// ModePre leaves the element's content untouched.
	ModePre
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBlock:
		return "block"
	case ModePhrase:
		return "phrase"
	case ModeInline:
		return "inline"
	case ModePre:
		return "pre"
	default:
		return "unknown"
	}
}

// Formatting returns the policy the render engine applies for m.
func (m Mode) Formatting() node.Formatting {
	switch m {
	case ModeBlock:
		return node.Formatting{
			AutoNewlineForChildren:  true,
			PadNewlineAfterOpening:  true,
			PadNewlineBeforeClosing: true,
			AutoIndentForChildren:   true,
		}
	case ModeInline:
		return node.Formatting{
			PreventAutoNewlineBefore: true,
			PreventAutoNewlineAfter:  true,
		}
	default:
		return node.Formatting{}
	}
}
