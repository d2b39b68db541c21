package site

import (
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/treesite/pkg/export"
	"github.com/vango-dev/treesite/pkg/html"
)

// Strategy selects how page groups are built.
type Strategy string

const (
	// StrategySync builds page groups one after another.
	StrategySync Strategy = "sync"

	// StrategyParallel builds page groups concurrently.
	StrategyParallel Strategy = "parallel"
)

// Default option values.
const (
	DefaultFileName      = "index.html"
	DefaultFileExtension = "html"
)

// Options configures a Site.
type Options struct {
	// ExportRoot is the directory written by the default exporter.
	ExportRoot string

	// DefaultLayout is used for pages without their own layout. Defaults
	// to html.HTML5Layout.
	DefaultLayout html.Layout

	// DefaultFileName is appended to page paths ending in "/".
	DefaultFileName string

	// FileExtension is appended to other page paths that lack it. Empty
	// disables the suffix.
	FileExtension string

	// Strategy is StrategySync or StrategyParallel.
	Strategy Strategy

	// Workers bounds concurrent page group builds under StrategyParallel.
	Workers int

	// WriteGroupFiles writes each group's files as soon as the group is
	// finalized.
	WriteGroupFiles bool

	// WriteSiteFiles writes every exported file once the site is
	// finalized.
	WriteSiteFiles bool

	// Indent is the root indentation unit for rendering.
	Indent string

	Logger         *slog.Logger
	Exporter       export.Exporter
	Observer       Observer
	TracerProvider trace.TracerProvider
}

// Option configures a Site.
type Option func(*Options)

// WithExportRoot sets the export directory.
func WithExportRoot(dir string) Option {
	return func(o *Options) {
		o.ExportRoot = dir
	}
}

// WithDefaultLayout sets the layout for pages without their own.
func WithDefaultLayout(l html.Layout) Option {
	return func(o *Options) {
		o.DefaultLayout = l
	}
}

// WithDefaultFileName sets the file name for paths ending in "/".
func WithDefaultFileName(name string) Option {
	return func(o *Options) {
		o.DefaultFileName = name
	}
}

// WithFileExtension sets the suffix appended to page paths.
func WithFileExtension(ext string) Option {
	return func(o *Options) {
		o.FileExtension = ext
	}
}

// WithStrategy sets the page group build strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithWorkers bounds parallel page group builds.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithWriteGroupFiles enables writing files at the end of each group.
func WithWriteGroupFiles(on bool) Option {
	return func(o *Options) {
		o.WriteGroupFiles = on
	}
}

// WithWriteSiteFiles enables writing files at the end of the build.
func WithWriteSiteFiles(on bool) Option {
	return func(o *Options) {
		o.WriteSiteFiles = on
	}
}

// WithIndent sets the root indentation unit.
func WithIndent(indent string) Option {
	return func(o *Options) {
		o.Indent = indent
	}
}

// WithLogger sets the build logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithExporter replaces the directory exporter.
func WithExporter(e export.Exporter) Option {
	return func(o *Options) {
		o.Exporter = e
	}
}

// WithObserver sets the build observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithTracerProvider sets the provider for build spans. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

func defaultOptions() Options {
	return Options{
		DefaultFileName: DefaultFileName,
		FileExtension:   DefaultFileExtension,
		Strategy:        StrategySync,
		Workers:         runtime.NumCPU(),
		WriteSiteFiles:  true,
	}
}

// applyDefaults fills fields that have no usable zero value.
func (o *Options) applyDefaults() {
	if o.DefaultLayout == nil {
		o.DefaultLayout = html.HTML5Layout{}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Exporter == nil {
		o.Exporter = export.NewDir(o.ExportRoot)
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
}
