/*
File   : aoi/internal/httpserver/server.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package httpserver implements the thin HTTP collaborator spec.md §6
// describes: a GET health check and a POST /run endpoint that lexes,
// parses, and interprets the request body as Aoi source, returning the
// interpret output string as the response body. Each request builds its
// own independent lexer/parser/evaluator triple — no state is shared
// between concurrent requests (spec.md §5).
package httpserver

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/akashmaji946/aoi/internal/config"
	"github.com/akashmaji946/aoi/internal/guard"
	"github.com/akashmaji946/aoi/internal/interp"
	"github.com/akashmaji946/aoi/internal/lexer"
	"github.com/akashmaji946/aoi/internal/parser"
)

// Server wraps a chi router bound to the Aoi interpreter pipeline.
type Server struct {
	router *chi.Mux
	cfg    *config.ServerConfig
	log    *zap.Logger
}

// New builds a Server wired to cfg, logging requests with log.
func New(cfg *config.ServerConfig, log *zap.Logger) *Server {
	s := &Server{cfg: cfg, log: log}
	s.router = chi.NewRouter()
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)
	s.router.Get("/", s.handleHealth)
	s.router.Post("/run", s.handleRun)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Info("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Aoi interpreter server is running"))
}

// handleRun runs the request body as Aoi source through the guards,
// then lexer → parser → evaluator, per spec.md §6/§7. Errors never
// change the HTTP status — they are embedded in the response body.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Error: could not read request body."))
		return
	}
	src := string(body)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.run(src)))
}

// run executes src and returns the text to send back, reused by both
// the HTTP handler and tests so guard/parse/interpret wiring is
// exercised identically from both.
func (s *Server) run(src string) string {
	if err := guard.Check(src, s.cfg.NumericLimit); err != nil {
		return err.Error()
	}

	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	if len(lx.Errors) > 0 {
		s.log.Warn("lex errors", zap.Int("count", len(lx.Errors)))
	}

	p := parser.New(tokens)
	statements := p.Parse()
	if len(p.Errors) > 0 {
		return "Parsing failed due to syntax errors."
	}

	ev := interp.New()
	return ev.Interpret(statements)
}
