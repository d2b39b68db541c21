package content

import (
	"path"
	"strings"

	"github.com/vango-dev/treesite/pkg/html"
	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/site"
)

// Defaults are the site-wide values a page falls back to.
type Defaults struct {
	Title       string
	Lang        string
	Description string
	Stylesheets []string
}

// Page is a Markdown document rendered through the HTML5 layout.
type Page struct {
	// Source is the file path relative to the content directory, with
	// forward slashes.
	Source string

	// Path is the site path of the page.
	Path string

	Meta FrontMatter

	// HTML is the converted body.
	HTML string

	Fingerprint string

	defaults Defaults
}

var (
	_ html.Page           = (*Page)(nil)
	_ html.PageHead       = (*Page)(nil)
	_ html.PageAttributes = (*Page)(nil)
	_ site.PagePreparer   = (*Page)(nil)
)

// bodyFormatting puts every child on its own line without indenting it,
// so preformatted blocks in the converted HTML survive rendering.
var bodyFormatting = node.Formatting{
	AutoNewlineForChildren:  true,
	PadNewlineAfterOpening:  true,
	PadNewlineBeforeClosing: true,
}

// Title returns the page title joined with the site title.
func (p *Page) Title() string {
	switch {
	case p.Meta.Title == "":
		return p.defaults.Title
	case p.defaults.Title == "" || p.Meta.Title == p.defaults.Title:
		return p.Meta.Title
	default:
		return p.Meta.Title + " | " + p.defaults.Title
	}
}

func (p *Page) Head(node.Context) any {
	head := []any{
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
	}
	if t := p.Title(); t != "" {
		head = append(head, html.Title(t))
	}
	desc := p.Meta.Description
	if desc == "" {
		desc = p.defaults.Description
	}
	if desc != "" {
		head = append(head, html.Meta(html.Name("description"), html.Content(desc)))
	}
	for _, href := range append(append([]string{}, p.defaults.Stylesheets...), p.Meta.Stylesheets...) {
		head = append(head, html.Link(html.Rel("stylesheet"), html.Href(href)))
	}
	return head
}

func (p *Page) Body(node.Context) any {
	return html.Main(html.Raw(p.HTML)).SetFormatting(bodyFormatting)
}

func (p *Page) HTMLAttributes(node.Context) node.Attributes {
	lang := p.Meta.Lang
	if lang == "" {
		lang = p.defaults.Lang
	}
	if lang == "" {
		return nil
	}
	return node.Attributes{"lang": lang}
}

// PreparePage publishes the title, source and fingerprint as page data.
func (p *Page) PreparePage(ctx *site.BuildContext) error {
	ctx.SetPageData("title", p.Title())
	ctx.SetPageData("source", p.Source)
	if p.Fingerprint != "" {
		ctx.SetPageData("fingerprint", p.Fingerprint)
	}
	return nil
}

// PagePath returns the site path of a content file given its path
// relative to the content directory.
func PagePath(rel string) string {
	rel = strings.TrimSuffix(path.Clean("/"+strings.ReplaceAll(rel, "\\", "/")), ".md")
	dir, name := path.Split(rel)
	if name == "index" {
		return dir
	}
	return rel
}

// GroupName returns the page group of a site path: its first directory,
// or site.DefaultGroup for top-level pages.
func GroupName(p string) string {
	trimmed := strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	return site.DefaultGroup
}
