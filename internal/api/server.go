package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amterp/filecolor/internal/watcher"
)

// Server wraps the HTTP server for a single vault.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	watcher    *watcher.Watcher
	logger     *log.Logger
}

// NewServer creates a server bound to localhost on the given port.
// Port 0 picks a free port. If fw is non-nil the handler is subscribed to it
// and it is started and stopped with the server.
func NewServer(handler *Handler, port int, fw *watcher.Watcher, logger *log.Logger) *Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	if fw != nil {
		fw.Subscribe(handler)
	}

	wrapped := Logging(logger)(Cors(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("127.0.0.1:%d", port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: fw,
		logger:  logger,
	}
}

// Listen binds the listening socket so Addr reports the real port.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.httpServer.Addr = ln.Addr().String()
	return nil
}

// Start begins serving HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			s.logger.Warn("failed to start file watcher", "err", err)
		}
	}

	err := s.httpServer.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			s.logger.Warn("failed to stop file watcher", "err", err)
		}
	}
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// URL returns the base URL of the server.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}
