package node

import "errors"

var (
	// ErrInvalidAttributeName is returned when an attribute name is empty
	// or contains a space, quote, apostrophe, '>', '/' or '='.
	ErrInvalidAttributeName = errors.New("invalid attribute name")

	// ErrNonRenderable is returned when a tree contains a value that is
	// neither Open nor Closed.
	ErrNonRenderable = errors.New("value is not renderable")
)
