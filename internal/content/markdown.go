package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Converter renders Markdown bodies to HTML.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter returns a CommonMark converter with the GitHub extensions
// and generated heading ids. Raw HTML in the source is kept only when
// unsafe is set.
func NewConverter(unsafe bool) *Converter {
	var rendererOpts []goldmark.Option
	if unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	}
	opts := append([]goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}, rendererOpts...)
	return &Converter{md: goldmark.New(opts...)}
}

// Convert renders src to HTML without the trailing newline.
func (c *Converter) Convert(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
