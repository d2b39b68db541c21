package errors

import (
	"context"
	stderrors "errors"

	"github.com/vango-dev/treesite/pkg/export"
	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/site"
)

// sentinels maps library errors to codes, most specific first.
var sentinels = []struct {
	err  error
	code string
}{
	{context.Canceled, "E208"},
	{context.DeadlineExceeded, "E208"},
	{site.ErrDuplicatePage, "E202"},
	{site.ErrExportPathCollision, "E203"},
	{site.ErrInvalidStage, "E204"},
	{site.ErrUnknownStrategy, "E205"},
	{node.ErrInvalidAttributeName, "E206"},
	{node.ErrNonRenderable, "E207"},
	{export.ErrRootPathUndefined, "E301"},
	{export.ErrRootPathNotDirectory, "E302"},
	{export.ErrWriteFailed, "E303"},
	{export.ErrUploadFailed, "E304"},
}

// Classify returns err as a coded Error. Errors that already carry a code
// are returned as is; unrecognized build errors get E201 and anything else
// fallback.
func Classify(err error, fallback string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	for _, s := range sentinels {
		if stderrors.Is(err, s.err) {
			return New(s.code).Wrap(err)
		}
	}
	var be *site.BuildError
	if stderrors.As(err, &be) {
		return New("E201").Wrap(err)
	}
	return New(fallback).Wrap(err)
}
