package site

import (
	"errors"
	"fmt"
)

// DefaultGroup is the name of the group used by Site.AddPage.
const DefaultGroup = "default"

// Processor runs at a page group stage.
type Processor func(ctx *BuildContext) error

// SiteProcessor runs at a site stage.
type SiteProcessor func(ctx *RootContext) error

// Site is a set of page groups built together. Configure it before calling
// Build; a Site must not be modified while a build is running.
type Site struct {
	opts           Options
	groups         []*PageGroup
	groupIndex     map[string]*PageGroup
	owners         map[string]*PageGroup
	processors     map[Phase][]Processor
	siteProcessors map[Phase][]SiteProcessor
}

// New returns a Site configured by opts.
func New(opts ...Option) *Site {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.applyDefaults()
	return &Site{
		opts:           o,
		groupIndex:     make(map[string]*PageGroup),
		owners:         make(map[string]*PageGroup),
		processors:     make(map[Phase][]Processor),
		siteProcessors: make(map[Phase][]SiteProcessor),
	}
}

// Options returns the effective options.
func (s *Site) Options() Options {
	return s.opts
}

// AddPage adds a page to the default group.
func (s *Site) AddPage(path string, page any) error {
	return s.AddPageGroup(DefaultGroup).AddPage(path, page)
}

// AddPageGroup returns the group called name, creating it if needed.
// Groups build in the order they were first added.
func (s *Site) AddPageGroup(name string) *PageGroup {
	if g, ok := s.groupIndex[name]; ok {
		return g
	}
	g := &PageGroup{
		name:       name,
		site:       s,
		processors: make(map[Phase][]Processor),
	}
	s.groups = append(s.groups, g)
	s.groupIndex[name] = g
	return g
}

// Groups returns the page groups in build order.
func (s *Site) Groups() []*PageGroup {
	out := make([]*PageGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

// Page returns the page registered at path in any group.
func (s *Site) Page(path string) (any, bool) {
	g, ok := s.owners[path]
	if !ok {
		return nil, false
	}
	return g.Page(path)
}

// Len returns the number of pages across all groups.
func (s *Site) Len() int {
	return len(s.owners)
}

// AddProcessor registers fn for a page stage in every group. Site-wide
// processors run before a group's own processors for the same stage.
func (s *Site) AddProcessor(stage string, fn Processor) error {
	phase, err := pagePhase(stage)
	if err != nil {
		return err
	}
	s.processors[phase] = append(s.processors[phase], fn)
	return nil
}

// AddSiteProcessor registers fn for one of the site stages.
func (s *Site) AddSiteProcessor(stage string, fn SiteProcessor) error {
	phase, ok := siteStages[stage]
	if !ok {
		return fmt.Errorf("%w: %q is not a site stage", ErrInvalidStage, stage)
	}
	s.siteProcessors[phase] = append(s.siteProcessors[phase], fn)
	return nil
}

func pagePhase(stage string) (Phase, error) {
	phase, ok := pageStages[stage]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a page stage", ErrInvalidStage, stage)
	}
	return phase, nil
}

// PageGroup is an ordered set of pages built by one BuildContext.
type PageGroup struct {
	name       string
	site       *Site
	paths      []string
	pages      map[string]any
	processors map[Phase][]Processor
}

// Name returns the group name.
func (g *PageGroup) Name() string {
	return g.name
}

// AddPage adds page at path. Paths are unique across the whole site.
func (g *PageGroup) AddPage(path string, page any) error {
	if path == "" {
		return errors.New("page path must not be empty")
	}
	if page == nil {
		return fmt.Errorf("page %s: nil page", path)
	}
	if owner, ok := g.site.owners[path]; ok {
		return fmt.Errorf("%w: %s (group %s)", ErrDuplicatePage, path, owner.name)
	}
	if g.pages == nil {
		g.pages = make(map[string]any)
	}
	g.paths = append(g.paths, path)
	g.pages[path] = page
	g.site.owners[path] = g
	return nil
}

// AddProcessor registers fn for a page stage in this group only.
func (g *PageGroup) AddProcessor(stage string, fn Processor) error {
	phase, err := pagePhase(stage)
	if err != nil {
		return err
	}
	g.processors[phase] = append(g.processors[phase], fn)
	return nil
}

// Paths returns the page paths in insertion order.
func (g *PageGroup) Paths() []string {
	out := make([]string, len(g.paths))
	copy(out, g.paths)
	return out
}

// Page returns the page at path.
func (g *PageGroup) Page(path string) (any, bool) {
	p, ok := g.pages[path]
	return p, ok
}

// Len returns the number of pages in the group.
func (g *PageGroup) Len() int {
	return len(g.paths)
}
