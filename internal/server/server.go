package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/semview/internal/view"
)

// Config holds viewer server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the mapping viewer over HTTP. The controller loads before
// the server starts; requests only read its state or move the selection.
type Server struct {
	cfg        Config
	controller *view.Controller
	router     chi.Router
	httpServer *http.Server
}

// New creates a viewer server around an already-constructed controller.
func New(cfg Config, controller *view.Controller) *Server {
	s := &Server{cfg: cfg, controller: controller}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/style.css", s.handleStyle)
	r.Get("/", s.handleIndex)
	r.Get("/variables/{name}", s.handleVariable)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// handleIndex serves the current view: the auto-selected first variable
// after a fresh load, or whatever the user selected since.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w)
}

// handleVariable moves the selection to the named variable and serves the
// full page. Unknown names are a 404 rather than a silent no-op.
func (s *Server) handleVariable(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || !s.controller.Select(name) {
		http.NotFound(w, r)
		return
	}
	s.writePage(w)
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	io.WriteString(w, view.StyleCSS)
}

// writePage renders the controller's state as a full page. A failed load
// still serves the error page, with a 503 so probes can tell it apart.
func (s *Server) writePage(w http.ResponseWriter) {
	st := s.controller.State()
	code := http.StatusOK
	if st.Phase == view.PhaseFailed {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	io.WriteString(w, view.Page(s.controller.Title(), st, view.PageOptions{BasePath: "/"}))
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("semview listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
