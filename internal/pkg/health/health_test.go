package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAllHealth(t *testing.T) {
	svc := NewHealthService("campusride", "1.0.0", time.Second)
	svc.AddChecker("firestore", CheckerFunc(func(ctx context.Context) error { return nil }))
	svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }))

	resp := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["firestore"].Status)
	assert.Equal(t, "unhealthy", resp.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
}

func TestCheckAllHealth_Timeout(t *testing.T) {
	svc := NewHealthService("campusride", "", 10*time.Millisecond)
	svc.AddChecker("slow", CheckerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	resp := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", resp.Status)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	svc := NewHealthService("campusride", "1.2.3", time.Second)
	RegisterHealthEndpoints(e, svc)

	t.Run("ping", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var info BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "campusride", info.ServiceName)
		assert.Equal(t, "1.2.3", info.Version)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("detailed unhealthy", func(t *testing.T) {
		svc.AddChecker("nats", CheckerFunc(func(ctx context.Context) error { return errors.New("down") }))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
