// Package export writes built files to their destination.
//
// An Exporter receives every file produced by a site build as a
// slash-rooted path and its contents. Dir writes below a local directory,
// S3 uploads to a bucket and Memory keeps the files for inspection.
package export

import (
	"context"
	"errors"
	"mime"
	"path"
	"strings"
)

var (
	// ErrRootPathUndefined is returned when a Dir exporter has no root.
	ErrRootPathUndefined = errors.New("export root path is undefined")

	// ErrRootPathNotDirectory is returned when the root exists but is not
	// a directory, or is a broken symbolic link.
	ErrRootPathNotDirectory = errors.New("export root path is not a directory")

	// ErrWriteFailed wraps a failure to write one file below a Dir root.
	ErrWriteFailed = errors.New("write failed")

	// ErrUploadFailed wraps a failed S3 upload.
	ErrUploadFailed = errors.New("upload failed")
)

// Exporter writes one file. Implementations must be safe for concurrent
// use.
type Exporter interface {
	Export(ctx context.Context, path string, data []byte) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(ctx context.Context, path string, data []byte) error

// Export implements Exporter.
func (f ExporterFunc) Export(ctx context.Context, path string, data []byte) error {
	return f(ctx, path, data)
}

// Discard drops every file.
var Discard Exporter = ExporterFunc(func(context.Context, string, []byte) error { return nil })

// ContentType returns the MIME type for a file path, defaulting to
// application/octet-stream.
func ContentType(p string) string {
	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js", ".mjs":
		return "text/javascript; charset=utf-8"
	case ".json":
		return "application/json"
	case ".xml":
		return "application/xml"
	case ".svg":
		return "image/svg+xml"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
