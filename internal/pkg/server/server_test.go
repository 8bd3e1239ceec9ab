package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGracefulServer_Run(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	srv := NewGracefulServer(e, "127.0.0.1", 0, time.Second)
	cleaned := false
	srv.OnShutdown(func(ctx context.Context) error {
		cleaned = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, cleaned)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulServer_StartError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	srv := NewGracefulServer(e, "256.0.0.1", 1, time.Second)

	err := srv.Run(context.Background())

	assert.ErrorContains(t, err, "failed to start server")
}
