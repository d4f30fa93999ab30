package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/november7co/memberqa/internal/service/qa"
	"github.com/november7co/memberqa/pkg/log"
)

// Server exposes the question-answering pipeline over HTTP:
//
//	GET /health          -> {"status":"ok"}
//	GET /ask?q=<question> -> {"answer":"..."}
//
// It implements srv.Service so the command layer can run it alongside
// other services and shut it down on signal.
type Server struct {
	srv      *http.Server
	pipeline *qa.Pipeline
	baseCtx  context.Context
}

func NewServer(ctx context.Context, addr string, pipeline *qa.Pipeline) *Server {
	s := &Server{
		pipeline: pipeline,
		baseCtx:  ctx,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ask", s.handleAsk)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.withRequestLog(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http api")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		// Per-request context keeps client-disconnect cancellation but
		// carries the service logger.
		ctx := log.FromCtx(s.baseCtx).WithContext(r.Context())
		next.ServeHTTP(sw, r.WithContext(ctx))
		log.FromCtx(s.baseCtx).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
