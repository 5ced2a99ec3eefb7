package http

import (
	"context"
	"errors"
	"healthgate/internal/platform/logger"
	"net"
	"net/http"
	"time"

	"healthgate/internal/config"
	"healthgate/internal/version"
)

const (
	maxHeaderBytes       = 64 << 10
	defaultShutdownGrace = 30 * time.Second
)

type Server struct {
	server        *http.Server
	logger        logger.Logger
	shutdownGrace time.Duration
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	grace := cfg.Server.ShutdownGrace()
	if grace <= 0 {
		grace = defaultShutdownGrace
	}

	return &Server{
		server: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           handler,
			ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
			ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeout) * time.Second,
			WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
			MaxHeaderBytes:    maxHeaderBytes,
		},
		logger:        log,
		shutdownGrace: grace,
	}
}

// Start binds the listener synchronously so a port conflict fails fx
// startup, then serves in the background.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("Failed to listen", logger.String("addr", s.server.Addr), logger.Error(err))
		return err
	}

	s.logger.Info("Starting gateway",
		logger.String("addr", ln.Addr().String()),
		logger.String("version", version.Get()),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Gateway stopped serving", logger.Error(err))
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("Gateway startup cancelled")
		return s.server.Shutdown(context.Background())
	default:
		return nil
	}
}

// Stop drains in-flight requests for at most the configured grace period.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("Shutting down gateway", logger.Duration("grace", s.shutdownGrace))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownGrace)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
