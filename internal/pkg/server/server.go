package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/logger"
)

// GracefulServer runs echo until the process receives SIGINT or SIGTERM
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	cleanups        []func(context.Context) error
}

func NewGracefulServer(e *echo.Echo, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout == 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers fn to run after the HTTP server stops, in registration order
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.cleanups = append(s.cleanups, fn)
}

// Start serves until a shutdown signal arrives, then drains in-flight requests
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	for i, fn := range s.cleanups {
		if err := fn(shutdownCtx); err != nil {
			logger.Error("Error during component shutdown", logger.Int("component", i), logger.Err(err))
		}
	}

	logger.Info("Server shutdown completed")
	return nil
}
