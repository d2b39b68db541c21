package site

import (
	"path"
	"strings"

	"github.com/vango-dev/treesite/pkg/html"
)

// Optional page hooks. A page implements any subset; the build calls each
// in the phase named after it. node.Preparable pages are also prepared in
// the prepare page phase, after PreparePage.

// LayoutProvider selects the layout for a page, overriding the site
// default.
type LayoutProvider interface {
	Layout() html.Layout
}

// SitePreparer runs once per page while the site is prepared, before any
// group starts.
type SitePreparer interface {
	PrepareSite(ctx *RootContext) error
}

type PagePreparer interface {
	PreparePage(ctx *BuildContext) error
}

// PageExporter replaces the default export of the rendered page. It is
// responsible for calling ctx.ExportFile itself.
type PageExporter interface {
	ExportPage(ctx *BuildContext) error
}

type PageFinalizer interface {
	FinalizePage(ctx *BuildContext) error
}

type SiteFinalizer interface {
	FinalizeSite(ctx *RootContext) error
}

// FileNamer overrides the default file name for a page path ending in "/".
type FileNamer interface {
	OutputFileName() string
}

// FileExtensioner overrides the file extension for a page. An empty
// extension leaves the path as is.
type FileExtensioner interface {
	OutputExtension() string
}

// ExportPath returns the export path of a page at pagePath.
//
// A path ending in "/" gets defaultFileName appended. Any other path gets
// "."+extension appended unless its last segment already has that
// extension, starts with a dot, or ends with one.
func ExportPath(pagePath, defaultFileName, extension string) string {
	p := pagePath
	ext := strings.TrimPrefix(extension, ".")
	switch {
	case strings.HasSuffix(p, "/"):
		p += defaultFileName
	case ext != "":
		name := p[strings.LastIndex(p, "/")+1:]
		dot := strings.LastIndex(name, ".")
		switch {
		case name == "":
		case dot == 0 || dot == len(name)-1:
		case dot > 0 && name[dot+1:] == ext:
		default:
			p += "." + ext
		}
	}
	return NormalizePath(p)
}

// NormalizePath returns the clean, rooted form of an export path.
func NormalizePath(p string) string {
	return path.Clean("/" + p)
}

func pageFileName(page any, def string) string {
	if n, ok := page.(FileNamer); ok {
		return n.OutputFileName()
	}
	return def
}

func pageExtension(page any, def string) string {
	if e, ok := page.(FileExtensioner); ok {
		return e.OutputExtension()
	}
	return def
}

func pageLayout(page any, def html.Layout) html.Layout {
	if lp, ok := page.(LayoutProvider); ok {
		if l := lp.Layout(); l != nil {
			return l
		}
	}
	if def != nil {
		return def
	}
	return html.HTML5Layout{}
}
