package node

// Context is the build state handed to every Render, Expand and Prepare
// call. Nodes may read page and site data and attach data to the page
// being built; they never change which page is current.
type Context interface {
	// CurrentPagePath returns the path of the page being processed, or ""
	// outside a page.
	CurrentPagePath() string

	// CurrentPage returns the page value being processed, or nil.
	CurrentPage() any

	// PageData returns a value stored for the current page.
	PageData(key string) (any, bool)

	// SetPageData stores a value for the current page.
	SetPageData(key string, value any)

	// SiteData returns a value shared by every page of the site.
	SiteData(key string) (any, bool)
}

// MapContext is a standalone Context backed by plain maps, for rendering
// trees outside a site build.
type MapContext struct {
	path     string
	page     any
	pageData map[string]any
	siteData map[string]any
}

// NewContext returns a MapContext for a page at path.
func NewContext(path string) *MapContext {
	return &MapContext{
		path:     path,
		pageData: make(map[string]any),
		siteData: make(map[string]any),
	}
}

// WithPage sets the value returned by CurrentPage.
func (c *MapContext) WithPage(page any) *MapContext {
	c.page = page
	return c
}

// SetSiteData stores a site-wide value.
func (c *MapContext) SetSiteData(key string, value any) {
	c.siteData[key] = value
}

func (c *MapContext) CurrentPagePath() string { return c.path }
func (c *MapContext) CurrentPage() any        { return c.page }

func (c *MapContext) PageData(key string) (any, bool) {
	v, ok := c.pageData[key]
	return v, ok
}

func (c *MapContext) SetPageData(key string, value any) {
	c.pageData[key] = value
}

func (c *MapContext) SiteData(key string) (any, bool) {
	v, ok := c.siteData[key]
	return v, ok
}
