package site

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/render"
)

// files is an ordered set of exported files keyed by normalized path.
type files struct {
	order []string
	data  map[string][]byte
}

func newFiles() *files {
	return &files{data: make(map[string][]byte)}
}

func (f *files) add(p string, data []byte) error {
	p = NormalizePath(p)
	if _, ok := f.data[p]; ok {
		return fmt.Errorf("%w: %s", ErrExportPathCollision, p)
	}
	f.order = append(f.order, p)
	f.data[p] = data
	return nil
}

func (f *files) get(p string) ([]byte, bool) {
	d, ok := f.data[NormalizePath(p)]
	return d, ok
}

func (f *files) paths() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

func (f *files) snapshot() map[string][]byte {
	out := make(map[string][]byte, len(f.data))
	for k, v := range f.data {
		out[k] = v
	}
	return out
}

// RootContext is the site-wide build state. Site processors and the site
// hooks of pages receive it.
type RootContext struct {
	std         context.Context
	site        *Site
	logger      *slog.Logger
	phase       Phase
	siteData    map[string]any
	pageData    map[string]map[string]any
	subcontexts []*BuildContext
	exported    *files
	currentPath string
	currentPage any
}

func newRootContext(ctx context.Context, s *Site) *RootContext {
	return &RootContext{
		std:      ctx,
		site:     s,
		logger:   s.opts.Logger,
		siteData: make(map[string]any),
		pageData: make(map[string]map[string]any),
		exported: newFiles(),
	}
}

// Context returns the build's context.Context.
func (c *RootContext) Context() context.Context { return c.std }

// Phase returns the phase currently running.
func (c *RootContext) Phase() Phase { return c.phase }

// Site returns the site being built.
func (c *RootContext) Site() *Site { return c.site }

func (c *RootContext) Logger() *slog.Logger { return c.logger }

func (c *RootContext) CurrentPagePath() string { return c.currentPath }
func (c *RootContext) CurrentPage() any        { return c.currentPage }

// PageData returns a value stored for the current page.
func (c *RootContext) PageData(key string) (any, bool) {
	return c.PageDataFor(c.currentPath, key)
}

// PageDataFor returns a value stored for the page at path.
func (c *RootContext) PageDataFor(path, key string) (any, bool) {
	v, ok := c.pageData[path][key]
	return v, ok
}

// SetPageData stores a value for the current page. It does nothing outside
// a page.
func (c *RootContext) SetPageData(key string, value any) {
	if m, ok := c.pageData[c.currentPath]; ok {
		m[key] = value
	}
}

func (c *RootContext) SiteData(key string) (any, bool) {
	v, ok := c.siteData[key]
	return v, ok
}

// SetSiteData stores a site-wide value. Call it only from site stages;
// page groups may read site data concurrently.
func (c *RootContext) SetSiteData(key string, value any) {
	c.siteData[key] = value
}

// Subcontexts returns the build contexts of every group, in group order.
// It is empty before the site is prepared.
func (c *RootContext) Subcontexts() []*BuildContext {
	out := make([]*BuildContext, len(c.subcontexts))
	copy(out, c.subcontexts)
	return out
}

// ExportFile adds a site-level file, such as a sitemap.
func (c *RootContext) ExportFile(path string, data []byte) error {
	return c.exported.add(path, data)
}

// ExportedFile returns a file exported by the site or, once the site is
// finalized, by any group.
func (c *RootContext) ExportedFile(path string) ([]byte, bool) {
	return c.exported.get(path)
}

// ExportedPaths returns the paths of every exported file in export order.
func (c *RootContext) ExportedPaths() []string {
	return c.exported.paths()
}

func (c *RootContext) setCurrent(path string, page any) {
	c.currentPath, c.currentPage = path, page
}

var _ node.Context = (*RootContext)(nil)

// BuildContext is the state of one page group build. It is handed to page
// processors, page hooks and, as a node.Context, to every node of the
// group's pages.
type BuildContext struct {
	std      context.Context
	root     *RootContext
	group    *PageGroup
	opts     Options
	logger   *slog.Logger
	renderer *render.Renderer
	phase    Phase

	currentPath string
	currentPage any

	built    map[string]any
	expanded map[string]*render.Node
	rendered map[string]string
	exported *files
	data     map[string]any
}

func newBuildContext(root *RootContext, g *PageGroup) *BuildContext {
	opts := root.site.opts
	return &BuildContext{
		std:      root.std,
		root:     root,
		group:    g,
		opts:     opts,
		logger:   opts.Logger.With("group", g.name),
		renderer: render.New(render.Options{Indent: opts.Indent}),
		built:    make(map[string]any),
		expanded: make(map[string]*render.Node),
		rendered: make(map[string]string),
		exported: newFiles(),
		data:     make(map[string]any),
	}
}

// Context returns the context.Context of the group build.
func (c *BuildContext) Context() context.Context { return c.std }

// Phase returns the phase currently running in this group.
func (c *BuildContext) Phase() Phase { return c.phase }

// Group returns the group being built.
func (c *BuildContext) Group() *PageGroup { return c.group }

// Root returns the site-wide context.
func (c *BuildContext) Root() *RootContext { return c.root }

func (c *BuildContext) Options() Options     { return c.opts }
func (c *BuildContext) Logger() *slog.Logger { return c.logger }

func (c *BuildContext) CurrentPagePath() string { return c.currentPath }
func (c *BuildContext) CurrentPage() any        { return c.currentPage }

// PageData returns a value stored for the current page.
func (c *BuildContext) PageData(key string) (any, bool) {
	return c.root.PageDataFor(c.currentPath, key)
}

// PageDataFor returns a value stored for the page at path. Under
// StrategyParallel only data set while the site was prepared is safe to
// read for pages of other groups.
func (c *BuildContext) PageDataFor(path, key string) (any, bool) {
	return c.root.PageDataFor(path, key)
}

// SetPageData stores a value for the current page. It does nothing outside
// a page.
func (c *BuildContext) SetPageData(key string, value any) {
	if m, ok := c.root.pageData[c.currentPath]; ok && c.group.owns(c.currentPath) {
		m[key] = value
	}
}

func (c *BuildContext) SiteData(key string) (any, bool) {
	return c.root.SiteData(key)
}

// Data returns a value private to this group build.
func (c *BuildContext) Data(key string) (any, bool) {
	v, ok := c.data[key]
	return v, ok
}

// SetData stores a value private to this group build.
func (c *BuildContext) SetData(key string, value any) {
	c.data[key] = value
}

// BuiltPage returns the layout output of the page at path.
func (c *BuildContext) BuiltPage(path string) (any, bool) {
	v, ok := c.built[path]
	return v, ok
}

// SetBuiltPage replaces the layout output of a page. Use it from
// post_build_pages processors.
func (c *BuildContext) SetBuiltPage(path string, result any) {
	c.built[path] = result
}

// ExpandedPage returns the expanded tree of the page at path.
func (c *BuildContext) ExpandedPage(path string) (*render.Node, bool) {
	t, ok := c.expanded[path]
	return t, ok
}

// RenderedPage returns the rendered text of the page at path.
func (c *BuildContext) RenderedPage(path string) (string, bool) {
	s, ok := c.rendered[path]
	return s, ok
}

// SetRenderedPage replaces the rendered text of a page. Use it from
// post_render_pages processors.
func (c *BuildContext) SetRenderedPage(path, text string) {
	c.rendered[path] = text
}

// ExportFile adds a file to the group's exports. Paths are normalized;
// exporting the same path twice is an error.
func (c *BuildContext) ExportFile(path string, data []byte) error {
	return c.exported.add(path, data)
}

// ExportedFile returns a file exported by this group.
func (c *BuildContext) ExportedFile(path string) ([]byte, bool) {
	return c.exported.get(path)
}

// ExportedPaths returns the group's export paths in export order.
func (c *BuildContext) ExportedPaths() []string {
	return c.exported.paths()
}

// Pages returns the group's page paths in insertion order.
func (c *BuildContext) Pages() []string {
	return c.group.Paths()
}

func (c *BuildContext) setCurrent(path string, page any) {
	c.currentPath, c.currentPage = path, page
}

var _ node.Context = (*BuildContext)(nil)

func (g *PageGroup) owns(path string) bool {
	_, ok := g.pages[path]
	return ok
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
