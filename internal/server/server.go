// Package server exposes the loop generator over HTTP.
//
//	GET  /health         {"status":"ok"}
//	POST /generate_loop  Parameters in, {"params", "frames"} out
//
// Requests may name the knobs elasticidade, fluidez, inercia and
// amolecimento, but the echoed params always use elasticity, fluidity,
// inertia and softening. Clients that read params.fluidez back must switch
// to params.fluidity.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/loopsim/internal/export"
	"github.com/san-kum/loopsim/internal/loop"
)

// Request limits for /generate_loop.
const (
	MaxBodyBytes    = 1 << 20
	MaxFrames       = 100_000
	MaxPreRollSteps = 1_000_000
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	log     *zap.Logger
	handler http.Handler
}

func New(log *zap.Logger) *Server {
	s := &Server{log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /generate_loop", s.handleGenerate)

	s.handler = withRequestID(withLogging(log, withCORS(mux)))
	return s
}

func (s *Server) Handler() http.Handler { return s.handler }

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	p := loop.DefaultParameters()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	if tl := loop.Plan(p); tl.Steps > MaxFrames || tl.PreRollSteps > MaxPreRollSteps {
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("sequence too long: %d frames, %d pre-roll steps", tl.Steps, tl.PreRollSteps))
		return
	}

	doc := export.NewDocument(p)
	if err := loop.CheckFinite(doc.Frames); err != nil {
		s.log.Warn("non-finite output", zap.Error(err), zap.String("request_id", r.Header.Get(requestIDHeader)))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.log.Debug("generated", zap.Int("frames", len(doc.Frames)))
	writeJSON(w, http.StatusOK, doc)
}
