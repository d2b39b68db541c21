package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/treesite/pkg/export"
	"github.com/vango-dev/treesite/pkg/html"
	"github.com/vango-dev/treesite/pkg/site"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestCollectorRecordsBuild(t *testing.T) {
	c := New(WithRegistry(prometheus.NewRegistry()))
	s := site.New(site.WithObserver(c), site.WithExporter(export.NewMemory()))
	_ = s.AddPage("/", &html.Document{Title: "Home"})
	_ = s.AddPageGroup("blog").AddPage("/blog/", &html.Document{Title: "Blog"})

	if _, err := s.Build(context.Background()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := counterValue(t, c.buildsTotal.WithLabelValues("success")); got != 1 {
		t.Errorf("builds_total(success) = %v, want 1", got)
	}
	if got := counterValue(t, c.pagesRendered.WithLabelValues("blog")); got != 1 {
		t.Errorf("pages_rendered_total(blog) = %v, want 1", got)
	}
	if got := counterValue(t, c.filesExported); got != 2 {
		t.Errorf("files_exported_total = %v, want 2", got)
	}
	if counterValue(t, c.renderedBytes) == 0 || counterValue(t, c.exportedBytes) == 0 {
		t.Error("byte counters not recorded")
	}
	// render_pages runs once per group.
	if got := histogramCount(t, c.phaseDuration.WithLabelValues("render_pages")); got != 2 {
		t.Errorf("phase_duration_seconds(render_pages) count = %d, want 2", got)
	}
	if got := histogramCount(t, c.buildDuration); got != 1 {
		t.Errorf("build_duration_seconds count = %d, want 1", got)
	}
}

func TestCollectorRecordsFailure(t *testing.T) {
	c := New(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
	c.PhaseFinished("default", site.PhaseBuildPages, time.Millisecond, errors.New("boom"))
	c.BuildFinished(time.Second, errors.New("boom"))

	if got := counterValue(t, c.phaseErrors.WithLabelValues("build_pages")); got != 1 {
		t.Errorf("phase_errors_total = %v, want 1", got)
	}
	if got := counterValue(t, c.buildsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("builds_total(error) = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithRegistry(reg), WithConstLabels(prometheus.Labels{"site": "docs"}))
	c.FileExported("/index.html", 10)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/_treesite/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `treesite_files_exported_total{site="docs"} 1`) {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}
