package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/consultacep/internal/logging"
)

const (
	shutdownTimeout    = 10 * time.Second
	serverReadTimeout  = 10 * time.Second
	serverWriteTimeout = 35 * time.Second // above requestTimeout
	serverIdleTimeout  = 60 * time.Second
)

// Server is the HTTP API server
type Server struct {
	addr    string
	handler http.Handler

	httpServer *http.Server
	ready      chan struct{}
	listenAddr string
}

// NewServer creates a server for h listening on addr
func NewServer(addr string, h *Handler) *Server {
	return &Server{
		addr:    addr,
		handler: SetupRouter(h),
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the listener is bound
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address; valid after Ready is closed
func (s *Server) Addr() string {
	return s.listenAddr
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.httpServer = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
	s.listenAddr = ln.Addr().String()
	close(s.ready)

	logging.Info("HTTP API listening", zap.String("addr", s.listenAddr))

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logging.Info("Shutting down HTTP API")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			_ = s.httpServer.Close()
			return fmt.Errorf("error during shutdown: %w", err)
		}

		logging.Info("HTTP API stopped")
		return nil
	}
}
