package site

import (
	"context"

	"github.com/vango-dev/treesite/pkg/export"
	"github.com/vango-dev/treesite/pkg/html"
)

// RenderPage builds a single page in memory and returns its rendered text.
// A nil layout selects html.HTML5Layout. Files the page exports are
// discarded.
func RenderPage(ctx context.Context, page any, layout html.Layout, opts ...Option) (string, error) {
	o := append([]Option{
		WithDefaultLayout(layout),
		WithExporter(export.Discard),
		WithWriteGroupFiles(false),
		WithWriteSiteFiles(false),
	}, opts...)
	s := New(o...)
	if err := s.AddPage("/", page); err != nil {
		return "", err
	}
	res, err := s.Build(ctx)
	if err != nil {
		return "", err
	}
	return res.Pages["/"], nil
}
