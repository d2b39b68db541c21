// Package metrics exports site build statistics as Prometheus metrics.
//
// A Collector implements site.Observer:
//
//	reg := prometheus.NewRegistry()
//	c := metrics.New(metrics.WithRegistry(reg))
//	s := site.New(site.WithObserver(c))
//
// Metrics collected:
//   - treesite_builds_total: Counter of builds by status
//   - treesite_build_duration_seconds: Histogram of whole build duration
//   - treesite_phase_duration_seconds: Histogram of phase duration by phase
//   - treesite_phase_errors_total: Counter of failed phases by phase
//   - treesite_pages_rendered_total: Counter of rendered pages by group
//   - treesite_rendered_bytes_total: Counter of rendered bytes
//   - treesite_files_exported_total: Counter of written files
//   - treesite_exported_bytes_total: Counter of written bytes
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/treesite/pkg/site"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "treesite").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "treesite",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records build events. It is safe for concurrent use.
type Collector struct {
	buildsTotal   *prometheus.CounterVec
	buildDuration prometheus.Histogram
	phaseDuration *prometheus.HistogramVec
	phaseErrors   *prometheus.CounterVec
	pagesRendered *prometheus.CounterVec
	renderedBytes prometheus.Counter
	filesExported prometheus.Counter
	exportedBytes prometheus.Counter
}

// New creates a Collector and registers its metrics. Registering twice
// with the same registry panics, as with promauto.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		buildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "builds_total",
			Help:        "Total number of site builds",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_duration_seconds",
			Help:        "Site build duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		phaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "phase_duration_seconds",
			Help:        "Build phase duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"phase"}),

		phaseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "phase_errors_total",
			Help:        "Total number of failed build phases",
			ConstLabels: config.ConstLabels,
		}, []string{"phase"}),

		pagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pages_rendered_total",
			Help:        "Total number of rendered pages",
			ConstLabels: config.ConstLabels,
		}, []string{"group"}),

		renderedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rendered_bytes_total",
			Help:        "Total bytes of rendered page text",
			ConstLabels: config.ConstLabels,
		}),

		filesExported: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "files_exported_total",
			Help:        "Total number of files written by exporters",
			ConstLabels: config.ConstLabels,
		}),

		exportedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "exported_bytes_total",
			Help:        "Total bytes written by exporters",
			ConstLabels: config.ConstLabels,
		}),
	}
}

var _ site.Observer = (*Collector)(nil)

func (c *Collector) PhaseStarted(string, site.Phase) {}

func (c *Collector) PhaseFinished(_ string, phase site.Phase, d time.Duration, err error) {
	c.phaseDuration.WithLabelValues(phase.String()).Observe(d.Seconds())
	if err != nil {
		c.phaseErrors.WithLabelValues(phase.String()).Inc()
	}
}

func (c *Collector) PageRendered(group, _ string, size int) {
	c.pagesRendered.WithLabelValues(group).Inc()
	c.renderedBytes.Add(float64(size))
}

func (c *Collector) FileExported(_ string, size int) {
	c.filesExported.Inc()
	c.exportedBytes.Add(float64(size))
}

func (c *Collector) BuildFinished(d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.buildsTotal.WithLabelValues(status).Inc()
	c.buildDuration.Observe(d.Seconds())
}
