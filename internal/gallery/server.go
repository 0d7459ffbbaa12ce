package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donutdao/donut-ui/internal/errors"
	"github.com/donutdao/donut-ui/internal/reload"
	"github.com/donutdao/donut-ui/pkg/render"
	"github.com/donutdao/donut-ui/pkg/theme"
	"github.com/donutdao/donut-ui/pkg/vdom"
)

// Config configures the gallery server.
type Config struct {
	// Addr is the listen address, e.g. "localhost:4477".
	Addr string

	// Theme is the initial theme. Nil uses theme.Default().
	Theme *theme.Theme

	// LoadTheme reloads the theme from its source. Nil disables Reload.
	LoadTheme func() (*theme.Theme, error)

	// WatchPaths are watched when Watch is set. A change to any of them
	// reloads the theme and refreshes connected browsers.
	WatchPaths []string
	Watch      bool

	// Logger receives server logs. Nil uses slog.Default().
	Logger *slog.Logger

	// Registry holds the gallery metrics. Nil creates a private registry
	// with the Go and process collectors.
	Registry *prometheus.Registry

	// MetricsOptions tune metric names and buckets.
	MetricsOptions []MetricsOption
}

// Server is the component gallery.
type Server struct {
	config   Config
	logger   *slog.Logger
	theme    atomic.Pointer[theme.Theme]
	reload   *reload.Server
	registry *prometheus.Registry
	metrics  *metrics
	router   chi.Router
}

// New creates a gallery server.
func New(config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := config.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		config:   config,
		logger:   logger.With("component", "gallery"),
		reload:   reload.NewServer(logger),
		registry: registry,
	}
	s.metrics = newMetrics(registry, s.reload.ClientCount, config.MetricsOptions...)

	initial := config.Theme
	if initial == nil {
		initial = theme.Default()
	}
	s.theme.Store(initial)

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logRequests(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(traceRequests)
	r.Use(s.metrics.instrument)

	r.Get("/", s.handleIndex)
	r.Get("/components/{name}", s.handleComponent)
	r.Get("/theme.json", s.handleThemeJSON)
	r.Get("/theme.css", s.handleExport(theme.FormatCSS, "text/css; charset=utf-8"))
	r.Get("/tailwind.config.js", s.handleExport(theme.FormatTailwind, "text/javascript; charset=utf-8"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Method(http.MethodGet, reload.Path, s.reload)
	return r
}

// Handler returns the gallery's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Theme returns the current theme snapshot. Callers must not modify it.
func (s *Server) Theme() *theme.Theme {
	return s.theme.Load()
}

// SetTheme replaces the theme and refreshes connected browsers.
func (s *Server) SetTheme(t *theme.Theme) {
	s.theme.Store(t)
	s.reload.ClearError()
	s.reload.NotifyReload()
}

// Reload loads the theme again. On failure the previous theme stays
// active and browsers show the error overlay.
func (s *Server) Reload(ctx context.Context) error {
	if s.config.LoadTheme == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, span := tracer().Start(ctx, "donut.theme.reload")
	t, err := s.config.LoadTheme()
	endSpan(span, err)

	if err != nil {
		s.metrics.themeReloads.WithLabelValues("error").Inc()
		s.logger.Warn("theme reload failed", "error", err)
		msg := err.Error()
		var de *errors.DonutError
		if stderrors.As(err, &de) {
			msg = de.FormatCompact()
			if de.Detail != "" {
				msg += "\n\n" + de.Detail
			}
		}
		s.reload.NotifyError(msg)
		return err
	}

	s.metrics.themeReloads.WithLabelValues("success").Inc()
	s.logger.Info("theme reloaded")
	s.SetTheme(t)
	return nil
}

// HandleChanges reloads the theme when a theme file changed and refreshes
// stylesheets for CSS changes.
func (s *Server) HandleChanges(ctx context.Context, changes []reload.Change) {
	var themeChanged bool
	for _, c := range changes {
		switch c.Type {
		case reload.ChangeTheme:
			themeChanged = true
		case reload.ChangeCSS:
			s.reload.NotifyCSS(c.Path)
		}
	}
	if themeChanged {
		_ = s.Reload(ctx)
	}
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return errors.New("E182").WithDetailf("Could not listen on %s.", s.config.Addr).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.config.Watch && len(s.config.WatchPaths) > 0 {
		w := reload.NewWatcher(reload.WatcherConfig{Paths: s.config.WatchPaths, Logger: s.logger})
		w.OnChange(func(changes []reload.Change) { s.HandleChanges(ctx, changes) })
		if err := w.Start(ctx); err != nil {
			ln.Close()
			return errors.New("E182").WithDetail("The theme watcher could not start.").Wrap(err)
		}
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("gallery listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.New("E182").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	s.reload.Close()
	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E182").WithDetail("Shutdown did not finish.").Wrap(err)
	}
	s.logger.Info("gallery stopped")
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var sections []*vdom.VNode
	for _, c := range catalog {
		instances, err := s.renderShowcase(r.Context(), c)
		if err != nil {
			s.writeError(w, r, errors.New("E183").Wrap(err))
			return
		}
		sections = append(sections, section(c, instances))
	}
	s.writePage(w, r, pageOptions{
		title: "donut-ui",
		body:  layout("donut-ui", sections),
	})
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	c, ok := Lookup(name)
	if !ok {
		s.writeError(w, r, errors.New("E180").
			WithDetailf("No component named %q.", name).
			WithSuggestion("Known components: "+names()))
		return
	}

	node, err := s.renderOne(r.Context(), c, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePage(w, r, pageOptions{
		title: c.Title + " · donut-ui",
		body:  layout(c.Title, vdom.Div(vdom.Data("component", c.Name), vdom.Class("max-w-md"), node)),
	})
}

func (s *Server) renderOne(ctx context.Context, c Component, r *http.Request) (node *vdom.VNode, err error) {
	_, span := startRender(ctx, c.Name)
	start := time.Now()
	defer func() {
		s.metrics.observeRender(c.Name, start, err)
		endSpan(span, err)
	}()
	return c.Render(r.URL.Query())
}

func (s *Server) renderShowcase(ctx context.Context, c Component) (nodes []*vdom.VNode, err error) {
	_, span := startRender(ctx, c.Name)
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("render %s: %v", c.Name, p)
		}
		s.metrics.observeRender(c.Name, start, err)
		endSpan(span, err)
	}()
	return c.Showcase(), nil
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, opts pageOptions) {
	opts.theme = s.Theme()
	opts.reload = s.config.Watch
	page, err := pageData(opts)
	if err != nil {
		s.writeError(w, r, errors.New("E183").Wrap(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sr := render.NewStreamingRenderer(w, render.RendererConfig{})
	if err := sr.RenderPage(page); err != nil {
		// Headers are gone; all that is left is to log.
		s.logger.Error("page render failed", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) handleThemeJSON(w http.ResponseWriter, r *http.Request) {
	data, err := json.MarshalIndent(s.Theme(), "", "  ")
	if err != nil {
		s.writeError(w, r, errors.New("E104").Wrap(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(append(data, '\n'))
}

func (s *Server) handleExport(format theme.Format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := theme.Encode(&buf, s.Theme(), format); err != nil {
			s.writeError(w, r, errors.New("E104").Wrap(err))
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(buf.Bytes())
	}
}

func statusFor(code string) int {
	switch code {
	case "E180":
		return http.StatusNotFound
	case "E181":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the error as JSON. Server-side failures are
// logged; caller mistakes are not.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	de := errors.FromError(err, "E183")
	status := statusFor(de.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(de.FormatJSON()))
}
