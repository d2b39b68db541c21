package site

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePage is returned when a page path is added twice.
	ErrDuplicatePage = errors.New("duplicate page path")

	// ErrInvalidStage is returned for an unknown processor stage name.
	ErrInvalidStage = errors.New("invalid processor stage")

	// ErrUnknownStrategy is returned for an unknown build strategy.
	ErrUnknownStrategy = errors.New("unknown build strategy")

	// ErrExportPathCollision is returned when two files are exported to
	// the same path.
	ErrExportPathCollision = errors.New("export path collision")
)

// BuildError reports the phase, and the page when there is one, at which a
// build failed.
type BuildError struct {
	Phase Phase
	Group string
	Page  string
	Err   error
}

func (e *BuildError) Error() string {
	msg := e.Phase.String()
	if e.Group != "" {
		msg += " [" + e.Group + "]"
	}
	if e.Page != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Page)
	}
	return msg + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
