package site

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/treesite/pkg/node"
	"github.com/vango-dev/treesite/pkg/render"
)

// Result describes a finished build.
type Result struct {
	// BuildID identifies the build in logs and spans.
	BuildID string

	// Files maps every exported path to its contents.
	Files map[string][]byte

	// Pages maps every page path to its rendered text.
	Pages map[string]string

	Groups   int
	Duration time.Duration
}

// Paths returns the exported paths in lexical order.
func (r *Result) Paths() []string {
	return sortedKeys(r.Files)
}

// builder runs one Build call.
type builder struct {
	site   *Site
	opts   Options
	root   *RootContext
	tracer trace.Tracer
	id     string
}

// Build runs every phase of the site build and writes the exported files
// through the configured exporter. Cancelling ctx stops the build at the
// next phase boundary.
func (s *Site) Build(ctx context.Context) (*Result, error) {
	switch s.opts.Strategy {
	case StrategySync, StrategyParallel:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s.opts.Strategy)
	}

	b := &builder{
		site:   s,
		opts:   s.opts,
		tracer: newTracer(s.opts.TracerProvider),
		id:     uuid.NewString(),
	}
	logger := s.opts.Logger.With("build_id", b.id)

	start := time.Now()
	ctx, span := startSpan(ctx, b.tracer, "site.build",
		attribute.String("treesite.build_id", b.id),
		attribute.String("treesite.strategy", string(s.opts.Strategy)),
		attribute.Int("treesite.groups", len(s.groups)),
		attribute.Int("treesite.pages", s.Len()),
	)
	b.root = newRootContext(ctx, s)
	b.root.logger = logger

	logger.Debug("build started", "strategy", s.opts.Strategy, "groups", len(s.groups), "pages", s.Len())
	err := b.run(ctx)
	d := time.Since(start)
	endSpan(span, err)
	s.opts.Observer.BuildFinished(d, err)
	if err != nil {
		logger.Error("build failed", "error", err, "duration", d)
		return nil, err
	}

	res := &Result{
		BuildID:  b.id,
		Files:    b.root.exported.snapshot(),
		Pages:    make(map[string]string),
		Groups:   len(b.root.subcontexts),
		Duration: d,
	}
	for _, bc := range b.root.subcontexts {
		for p, text := range bc.rendered {
			res.Pages[p] = text
		}
	}
	logger.Info("site built", "pages", len(res.Pages), "files", len(res.Files), "duration", d)
	return res, nil
}

func (b *builder) run(ctx context.Context) error {
	r := b.root
	steps := []struct {
		phase Phase
		fn    func() error
	}{
		{PhaseInit, func() error { return nil }},
		{PhasePrePrepareSiteBuild, func() error { return b.siteProcessors(PhasePrePrepareSiteBuild) }},
		{PhasePrepareSiteBuild, b.prepareSite},
		{PhasePostPrepareSiteBuild, func() error { return b.siteProcessors(PhasePostPrepareSiteBuild) }},
	}
	for _, st := range steps {
		if err := b.sitePhase(ctx, st.phase, st.fn); err != nil {
			return err
		}
	}

	if err := b.buildGroups(ctx); err != nil {
		return err
	}

	steps = []struct {
		phase Phase
		fn    func() error
	}{
		{PhasePreFinalizeSiteBuild, func() error { return b.siteProcessors(PhasePreFinalizeSiteBuild) }},
		{PhaseFinalizeSiteBuild, b.finalizeSite},
		{PhasePostFinalizeSiteBuild, func() error { return b.siteProcessors(PhasePostFinalizeSiteBuild) }},
	}
	for _, st := range steps {
		if err := b.sitePhase(ctx, st.phase, st.fn); err != nil {
			return err
		}
	}
	r.setCurrent("", nil)
	return nil
}

// sitePhase runs one site-level phase with tracing and observation.
func (b *builder) sitePhase(ctx context.Context, phase Phase, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return &BuildError{Phase: phase, Err: err}
	}
	b.root.phase = phase
	_, span := startSpan(ctx, b.tracer, "site."+phase.String())
	start := time.Now()
	b.opts.Observer.PhaseStarted("", phase)
	err := fn()
	b.opts.Observer.PhaseFinished("", phase, time.Since(start), err)
	endSpan(span, err)
	if err != nil {
		var be *BuildError
		if !errors.As(err, &be) {
			err = &BuildError{Phase: phase, Err: err}
		}
		return err
	}
	b.root.logger.Debug("phase finished", "phase", phase.String())
	return nil
}

func (b *builder) siteProcessors(phase Phase) error {
	for _, fn := range b.site.siteProcessors[phase] {
		if err := fn(b.root); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) prepareSite() error {
	r := b.root
	for _, g := range b.site.groups {
		for _, p := range g.paths {
			r.pageData[p] = make(map[string]any)
		}
	}
	for _, g := range b.site.groups {
		for _, p := range g.paths {
			page := g.pages[p]
			sp, ok := page.(SitePreparer)
			if !ok {
				continue
			}
			r.setCurrent(p, page)
			if err := sp.PrepareSite(r); err != nil {
				r.setCurrent("", nil)
				return &BuildError{Phase: PhasePrepareSiteBuild, Group: g.name, Page: p, Err: err}
			}
		}
	}
	r.setCurrent("", nil)
	r.subcontexts = r.subcontexts[:0]
	for _, g := range b.site.groups {
		r.subcontexts = append(r.subcontexts, newBuildContext(r, g))
	}
	return nil
}

func (b *builder) buildGroups(ctx context.Context) error {
	subs := b.root.subcontexts
	if b.opts.Strategy == StrategySync {
		for _, bc := range subs {
			bc.std = ctx
			if err := b.buildGroup(bc); err != nil {
				return err
			}
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.opts.Workers)
	for _, bc := range subs {
		bc := bc
		bc.std = egCtx
		eg.Go(func() error {
			return b.buildGroup(bc)
		})
	}
	return eg.Wait()
}

// groupStep is one main phase of a page group build with its pre and post
// processor phases.
type groupStep struct {
	pre, main, post Phase
	fn              func(b *builder, bc *BuildContext) error
}

var groupSteps = []groupStep{
	{PhasePrePreparePageBuild, PhasePreparePageBuild, PhasePostPreparePageBuild, (*builder).preparePages},
	{PhasePreBuildPages, PhaseBuildPages, PhasePostBuildPages, (*builder).buildPages},
	{PhasePrePreparePageExpansion, PhasePreparePageExpansion, PhasePostPreparePageExpansion, (*builder).prepareExpansion},
	{PhasePreExpandPages, PhaseExpandPages, PhasePostExpandPages, (*builder).expandPages},
	{PhasePreRenderPages, PhaseRenderPages, PhasePostRenderPages, (*builder).renderPages},
	{PhasePreExportPages, PhaseExportPages, PhasePostExportPages, (*builder).exportPages},
	{PhasePreFinalizePageBuild, PhaseFinalizePageBuild, PhasePostFinalizePageBuild, (*builder).finalizePages},
}

func (b *builder) buildGroup(bc *BuildContext) error {
	ctx, span := startSpan(bc.std, b.tracer, "site.group",
		attribute.String("treesite.group", bc.group.name),
		attribute.Int("treesite.pages", bc.group.Len()),
	)
	parent := bc.std
	bc.std = ctx
	defer func() { bc.std = parent }()

	var err error
	for _, st := range groupSteps {
		if err = b.groupPhase(bc, st.pre, b.processors); err != nil {
			break
		}
		if err = b.groupPhase(bc, st.main, func(bc *BuildContext, _ Phase) error { return st.fn(b, bc) }); err != nil {
			break
		}
		if err = b.groupPhase(bc, st.post, b.processors); err != nil {
			break
		}
	}
	bc.setCurrent("", nil)
	endSpan(span, err)
	return err
}

func (b *builder) groupPhase(bc *BuildContext, phase Phase, fn func(bc *BuildContext, phase Phase) error) error {
	group := bc.group.name
	if err := bc.std.Err(); err != nil {
		return &BuildError{Phase: phase, Group: group, Err: err}
	}
	bc.phase = phase
	_, span := startSpan(bc.std, b.tracer, "site."+phase.String(), attribute.String("treesite.group", group))
	start := time.Now()
	b.opts.Observer.PhaseStarted(group, phase)
	err := fn(bc, phase)
	b.opts.Observer.PhaseFinished(group, phase, time.Since(start), err)
	endSpan(span, err)
	if err != nil {
		var be *BuildError
		if !errors.As(err, &be) {
			err = &BuildError{Phase: phase, Group: group, Err: err}
		}
		return err
	}
	bc.logger.Debug("phase finished", "phase", phase.String())
	return nil
}

// processors runs the site-wide then the group processors for phase.
func (b *builder) processors(bc *BuildContext, phase Phase) error {
	for _, fn := range b.site.processors[phase] {
		if err := fn(bc); err != nil {
			return err
		}
	}
	for _, fn := range bc.group.processors[phase] {
		if err := fn(bc); err != nil {
			return err
		}
	}
	return nil
}

// eachPage calls fn with every page of the group set as current.
func (b *builder) eachPage(bc *BuildContext, fn func(path string, page any) error) error {
	defer bc.setCurrent("", nil)
	for _, p := range bc.group.paths {
		page := bc.group.pages[p]
		bc.setCurrent(p, page)
		if err := fn(p, page); err != nil {
			return &BuildError{Phase: bc.phase, Group: bc.group.name, Page: p, Err: err}
		}
	}
	return nil
}

func (b *builder) preparePages(bc *BuildContext) error {
	return b.eachPage(bc, func(_ string, page any) error {
		if pp, ok := page.(PagePreparer); ok {
			if err := pp.PreparePage(bc); err != nil {
				return err
			}
		}
		if pp, ok := page.(node.Preparable); ok {
			return pp.Prepare(bc)
		}
		return nil
	})
}

func (b *builder) buildPages(bc *BuildContext) error {
	return b.eachPage(bc, func(p string, page any) error {
		result, err := pageLayout(page, b.opts.DefaultLayout).Build(page, bc)
		if err != nil {
			return err
		}
		bc.built[p] = result
		return nil
	})
}

func (b *builder) prepareExpansion(bc *BuildContext) error {
	return b.eachPage(bc, func(p string, _ any) error {
		return render.Prepare(bc.built[p], bc)
	})
}

func (b *builder) expandPages(bc *BuildContext) error {
	return b.eachPage(bc, func(p string, _ any) error {
		tree, err := render.Expand(bc.built[p], bc)
		if err != nil {
			return err
		}
		bc.expanded[p] = tree
		return nil
	})
}

func (b *builder) renderPages(bc *BuildContext) error {
	return b.eachPage(bc, func(p string, _ any) error {
		text, err := bc.renderer.Render(bc.expanded[p], bc)
		if err != nil {
			return err
		}
		bc.rendered[p] = text
		b.opts.Observer.PageRendered(bc.group.name, p, len(text))
		return nil
	})
}

func (b *builder) exportPages(bc *BuildContext) error {
	return b.eachPage(bc, func(p string, page any) error {
		if pe, ok := page.(PageExporter); ok {
			return pe.ExportPage(bc)
		}
		target := ExportPath(p,
			pageFileName(page, b.opts.DefaultFileName),
			pageExtension(page, b.opts.FileExtension))
		return bc.ExportFile(target, []byte(bc.rendered[p]))
	})
}

func (b *builder) finalizePages(bc *BuildContext) error {
	err := b.eachPage(bc, func(_ string, page any) error {
		if pf, ok := page.(PageFinalizer); ok {
			return pf.FinalizePage(bc)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if b.opts.WriteGroupFiles {
		return b.write(bc.std, bc.exported)
	}
	return nil
}

func (b *builder) finalizeSite() error {
	r := b.root
	merged := newFiles()
	written := make(map[string]bool)
	for _, bc := range r.subcontexts {
		for _, p := range bc.exported.order {
			written[p] = b.opts.WriteGroupFiles
			if err := merged.add(p, bc.exported.data[p]); err != nil {
				return &BuildError{Phase: PhaseFinalizeSiteBuild, Group: bc.group.name, Err: err}
			}
		}
	}
	// Files added by site processors so far follow the group files.
	for _, p := range r.exported.order {
		if err := merged.add(p, r.exported.data[p]); err != nil {
			return err
		}
	}
	r.exported = merged

	for _, g := range b.site.groups {
		for _, p := range g.paths {
			page := g.pages[p]
			sf, ok := page.(SiteFinalizer)
			if !ok {
				continue
			}
			r.setCurrent(p, page)
			if err := sf.FinalizeSite(r); err != nil {
				r.setCurrent("", nil)
				return &BuildError{Phase: PhaseFinalizeSiteBuild, Group: g.name, Page: p, Err: err}
			}
		}
	}
	r.setCurrent("", nil)

	if !b.opts.WriteSiteFiles {
		return nil
	}
	pending := newFiles()
	for _, p := range r.exported.order {
		if !written[p] {
			pending.order = append(pending.order, p)
			pending.data[p] = r.exported.data[p]
		}
	}
	return b.write(r.std, pending)
}

func (b *builder) write(ctx context.Context, f *files) error {
	for _, p := range f.order {
		data := f.data[p]
		if err := b.opts.Exporter.Export(ctx, p, data); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
		b.opts.Observer.FileExported(p, len(data))
	}
	return nil
}
