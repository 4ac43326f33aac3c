package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/colossus-credit/docs/assemble"
	"github.com/colossus-credit/docs/generator"
	"github.com/colossus-credit/docs/logging"
)

//go:embed templates/layout.html
var layoutFS embed.FS

var layout = template.Must(template.New("layout.html").
	Funcs(template.FuncMap{"methodColor": assemble.MethodColor}).
	ParseFS(layoutFS, "templates/layout.html"))

// Options configures the documentation site.
type Options struct {
	// Title is shown next to the logo
	Title string
	// LogoURL is the logo image URL
	LogoURL string
	// BaseURL is the URL prefix pages are served under
	BaseURL string
	// ContentDir holds meta.json and the generated pages
	ContentDir string
	// PublicDir holds static files served from the site root when set
	PublicDir string
}

// DefaultOptions returns the branding of the Colossus documentation site.
func DefaultOptions() Options {
	return Options{
		Title:      "Colossus",
		LogoURL:    "/colossus.jpg",
		BaseURL:    generator.DefaultBaseURL,
		ContentDir: "content/docs/api-reference",
		PublicDir:  "public",
	}
}

type server struct {
	opts    Options
	content *content
	log     logging.Logger
	metrics *Metrics
}

type layoutData struct {
	Site Options
	Nav  Nav
	Page *Page
}

// New builds the site handler. Metrics are registered on reg and exposed at
// /metrics; a nil reg uses a fresh registry.
func New(opts Options, logger logging.Logger, reg *prometheus.Registry) (http.Handler, error) {
	if opts.ContentDir == "" {
		return nil, errors.New("site: content directory must be set")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = generator.DefaultBaseURL
	}
	opts.BaseURL = "/" + strings.Trim(opts.BaseURL, "/")
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("site: registering metrics: %w", err)
	}

	s := &server{
		opts:    opts,
		content: newContent(opts.ContentDir, opts.BaseURL),
		log:     logging.OrNop(logger),
		metrics: metrics,
	}

	r := mux.NewRouter()
	r.Use(s.instrument)
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if opts.BaseURL == "/" {
		r.HandleFunc("/", s.servePage).Methods(http.MethodGet, http.MethodHead)
	} else {
		r.HandleFunc("/", s.redirectToBase).Methods(http.MethodGet, http.MethodHead)
		r.HandleFunc(opts.BaseURL, s.servePage).Methods(http.MethodGet, http.MethodHead)
	}
	r.HandleFunc(strings.TrimSuffix(opts.BaseURL, "/")+"/{page:"+pageIDPattern+"}", s.servePage).
		Methods(http.MethodGet, http.MethodHead)
	if opts.PublicDir != "" {
		// public files are served from the root, like the logo at /colossus.jpg
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.PublicDir))).Methods(http.MethodGet, http.MethodHead)
	}
	r.NotFoundHandler = s.instrument(http.HandlerFunc(s.notFound))

	return handlers.RecoveryHandler(
		handlers.PrintRecoveryStack(false),
		handlers.RecoveryLogger(recoveryLogger{s.log}),
	)(handlers.CompressHandler(r)), nil
}

func (s *server) redirectToBase(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.opts.BaseURL, http.StatusFound)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *server) notFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "page not found", http.StatusNotFound)
}

func (s *server) servePage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["page"]
	if id == "" {
		id = assemble.IndexPageID
	}

	page, err := s.content.page(id)
	if errors.Is(err, errPageNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.log.Error("failed to render page", "page", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	nav, err := s.content.nav(id)
	if err != nil {
		s.log.Error("failed to build navigation", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, layoutData{Site: s.opts, Nav: nav, Page: page}); err != nil {
		s.log.Error("failed to execute layout", "page", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tmpl, err := cur.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		s.metrics.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.log.Debug("served request", "method", r.Method, "path", r.URL.Path, "status", rec.status)
	})
}

// recoveryLogger adapts Logger to the handlers.RecoveryHandlerLogger interface.
type recoveryLogger struct {
	log logging.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.log.Error("recovered from panic", "panic", fmt.Sprint(v...))
}

// ListenAndServe serves handler on addr until ctx is cancelled, then shuts
// the server down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger logging.Logger) error {
	log := logging.OrNop(logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 16,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting documentation site", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("documentation site shutdown failed", "error", err)
		return err
	}
	log.Info("documentation site stopped")
	return nil
}
