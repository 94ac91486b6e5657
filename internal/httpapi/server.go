// Package httpapi exposes grid analysis over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/laserwatch/laserwatch/internal/config"
	"github.com/laserwatch/laserwatch/internal/report"
	"github.com/laserwatch/laserwatch/pkg/algo"
	"github.com/laserwatch/laserwatch/pkg/grid"
)

// Server serves the analysis API.
type Server struct {
	cfg    *config.Config
	server *http.Server
	router *mux.Router
}

// NewServer builds a server from cfg and registers its routes.
func NewServer(cfg *config.Config) *Server {
	router := mux.NewRouter()
	read, write := cfg.Timeouts()

	s := &Server{
		cfg:    cfg,
		router: router,
		server: &http.Server{
			Addr:         cfg.Server.Addr,
			ReadTimeout:  read,
			WriteTimeout: write,
			IdleTimeout:  60 * time.Second,
			Handler:      router,
		},
	}
	s.registerRoutes()
	return s
}

// Handler returns the routed handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.Use(logRequests)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/analyze", s.handleAnalyze).Methods(http.MethodPost)
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	slog.Info("HTTP server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := report.Options{Target: s.cfg.TargetCount(), Nth: s.cfg.NthToReport()}
	var err error
	if opts.Target, err = intParam(q.Get("target"), opts.Target); err != nil {
		http.Error(w, "target: "+err.Error(), http.StatusBadRequest)
		return
	}
	if opts.Nth, err = intParam(q.Get("nth"), opts.Nth); err != nil {
		http.Error(w, "nth: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := s.cfg.Output.Format
	if f := q.Get("format"); f != "" {
		format = strings.ToLower(f)
	}
	if format != "text" && format != "json" && format != "yaml" {
		http.Error(w, "unsupported format: "+format, http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	m, err := grid.Parse(body, s.cfg.OccupiedRune())
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "grid too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := report.Build(m, opts)
	if err != nil {
		if errors.Is(err, algo.ErrEmptyInput) {
			http.Error(w, "grid has no occupied cells", http.StatusUnprocessableEntity)
			return
		}
		slog.Error("Analysis failed", "err", err)
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", report.ContentType(format))
	w.Header().Set("X-Run-Id", rep.RunID)
	if err := report.Write(w, rep, format); err != nil {
		slog.Error("Failed to write report", "run_id", rep.RunID, "err", err)
	}
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative: %d", n)
	}
	return n, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
