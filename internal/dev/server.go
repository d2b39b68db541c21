package dev

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/treesite/internal/config"
	tserrors "github.com/vango-dev/treesite/internal/errors"
	"github.com/vango-dev/treesite/pkg/metrics"
	"github.com/vango-dev/treesite/pkg/site"
)

// MetricsPath serves the build metrics when ServerOptions.Metrics is set.
const MetricsPath = "/_treesite/metrics"

// BuildFunc builds the site into the export directory.
type BuildFunc func(ctx context.Context) (*site.Result, error)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Build runs one full build. It is called once at start and again
	// after every batch of changes.
	Build BuildFunc

	Logger *slog.Logger

	// Metrics is exposed at MetricsPath when set.
	Metrics prometheus.Gatherer

	// DisableReload turns off the WebSocket endpoint and script injection.
	DisableReload bool

	// OnReload is called after browsers were notified of a rebuild.
	OnReload func(clients int)
}

// Server is the preview server.
type Server struct {
	config       *config.Config
	options      ServerOptions
	logger       *slog.Logger
	watcher      *Watcher
	reloadServer *ReloadServer
	changeCh     chan []Change
	httpServer   *http.Server
	mu           sync.Mutex
	buildMu      sync.Mutex
	running      bool
}

// NewServer creates a new preview server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    CollectWatchPaths(cfg),
		Ignore:   append(append([]string{}, DefaultIgnore...), cfg.Dev.Ignore...),
		Debounce: cfg.DebounceDuration(),
		Logger:   logger,
	})

	var reloadServer *ReloadServer
	if !options.DisableReload {
		reloadServer = NewReloadServer(logger)
	}

	return &Server{
		config:       cfg,
		options:      options,
		logger:       logger,
		watcher:      watcher,
		reloadServer: reloadServer,
	}
}

// Handler returns the HTTP handler of the preview server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.reloadEnabled() {
		r.Get(ReloadPath, s.reloadServer.HandleWebSocket)
	}
	if s.options.Metrics != nil {
		r.Handle(MetricsPath, metrics.Handler(s.options.Metrics))
	}
	r.Get("/*", s.serveOutput)
	r.Head("/*", s.serveOutput)
	return r
}

// Start builds the site, then serves it and rebuilds on changes until ctx
// is done. It fails with E401 when the listener fails and E402 when the
// watcher does.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.Rebuild(ctx, nil)

	s.changeCh = make(chan []Change, 16)
	s.watcher.OnChange(func(changes []Change) {
		select {
		case s.changeCh <- changes:
		default:
		}
	})
	watchErrCh := make(chan error, 1)
	go func() {
		if err := s.watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("watcher stopped", "error", err)
			watchErrCh <- err
		}
	}()
	go s.processChanges(ctx)

	s.httpServer = &http.Server{
		Addr:              s.config.DevAddress(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("serving", "url", s.config.DevURL(), "dir", s.config.OutputPath())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		if err != nil {
			return tserrors.New("E401").Wrap(err)
		}
		return nil
	case err := <-watchErrCh:
		s.Stop()
		return tserrors.New("E402").Wrap(err)
	}
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	s.watcher.Stop()
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// processChanges serializes change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case changes := <-s.changeCh:
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next...)
				default:
					draining = false
				}
			}
			s.Rebuild(ctx, changes)
		}
	}
}

// Rebuild runs the build and notifies browsers. When every change is a
// stylesheet, browsers reload stylesheets only. The build error, if any,
// is returned after being shown in the error overlay.
func (s *Server) Rebuild(ctx context.Context, changes []Change) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	for _, c := range changes {
		s.logger.Debug("changed", "path", c.Path, "type", c.Type)
	}

	start := time.Now()
	res, err := s.options.Build(ctx)
	if err != nil {
		cerr := tserrors.Classify(err, "E201")
		s.logger.Error("build failed", "code", cerr.Code, "error", err)
		s.notifyError(cerr.Error())
		return err
	}
	s.logger.Info("built",
		"pages", len(res.Pages),
		"files", len(res.Files),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	s.clearReloadError()
	if len(changes) > 0 && onlyStyles(changes) {
		s.notifyCSS(changes[0].Path)
	} else {
		s.notifyReload()
	}
	return nil
}

func onlyStyles(changes []Change) bool {
	for _, c := range changes {
		if c.Type != ChangeStyle {
			return false
		}
	}
	return true
}

// serveOutput serves a file from the export directory. Extensionless
// paths fall back to the page file the build writes for them, and HTML
// responses carry the live reload script.
func (s *Server) serveOutput(w http.ResponseWriter, r *http.Request) {
	file, ok := s.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if !s.reloadEnabled() || !strings.EqualFold(filepath.Ext(file), ".html") {
		http.ServeFile(w, r, file)
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var modTime time.Time
	if info, err := os.Stat(file); err == nil {
		modTime = info.ModTime()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, filepath.Base(file), modTime, bytes.NewReader(InjectScript(data)))
}

// resolve maps a URL path to a file under the export directory.
func (s *Server) resolve(urlPath string) (string, bool) {
	root := s.config.OutputPath()
	clean := path.Clean("/" + urlPath)

	candidates := []string{clean}
	if strings.HasSuffix(urlPath, "/") || clean == "/" {
		candidates = []string{path.Join(clean, s.config.Build.DefaultFileName)}
	} else if ext := s.config.Build.FileExtension; ext != "" && path.Ext(clean) == "" {
		candidates = append(candidates, clean+"."+strings.TrimPrefix(ext, "."))
	}

	for _, c := range candidates {
		file := filepath.Join(root, filepath.FromSlash(c))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return file, true
		}
	}
	return "", false
}

func (s *Server) reloadEnabled() bool {
	return s.reloadServer != nil
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		return
	}

	s.reloadServer.NotifyReload()
	clients := s.reloadServer.ClientCount()
	if s.options.OnReload != nil {
		s.options.OnReload(clients)
	}
	s.logger.Debug("reloaded browsers", "clients", clients)
}

func (s *Server) notifyCSS(file string) {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyCSS(filepath.Base(file))
	if s.options.OnReload != nil {
		s.options.OnReload(s.reloadServer.ClientCount())
	}
}

func (s *Server) notifyError(errMsg string) {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyError(errMsg)
}

func (s *Server) clearReloadError() {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.ClearError()
}
