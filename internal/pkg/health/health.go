package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/logger"
)

// HealthChecker is implemented by every dependency client the service pings
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// BuildInfo describes the running binary
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

type DependencyInfo struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// HealthService runs registered dependency checks concurrently
type HealthService struct {
	service  string
	version  string
	timeout  time.Duration
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

func NewHealthService(service, version string, timeout time.Duration) *HealthService {
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	return &HealthService{
		service:  service,
		version:  version,
		timeout:  timeout,
		checkers: make(map[string]HealthChecker),
	}
}

// AddChecker registers a dependency under name
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// CheckAllHealth reports unhealthy if any dependency fails
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	h.mu.RLock()
	checkers := make(map[string]HealthChecker, len(h.checkers))
	for name, c := range h.checkers {
		checkers[name] = c
	}
	h.mu.RUnlock()

	resp := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Service:      h.service,
		Version:      h.version,
		Dependencies: make(map[string]DependencyInfo, len(checkers)),
	}

	var (
		wg  sync.WaitGroup
		rmu sync.Mutex
	)
	for name, checker := range checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()
			start := time.Now()
			err := checker.CheckHealth(ctx)
			info := DependencyInfo{Status: "healthy", Latency: time.Since(start).String()}
			if err != nil {
				logger.Error("Health check failed", logger.String("dependency", name), logger.Err(err))
				info.Status = "unhealthy"
				info.Error = err.Error()
			}

			rmu.Lock()
			defer rmu.Unlock()
			resp.Dependencies[name] = info
			if err != nil {
				resp.Status = "unhealthy"
			}
		}(name, checker)
	}
	wg.Wait()

	return resp
}

// RegisterHealthEndpoints mounts /ping, /health and /health/detailed
func RegisterHealthEndpoints(e *echo.Echo, h *HealthService) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     h.version,
			ServiceName: h.service,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		resp := h.CheckAllHealth(c.Request().Context())
		status := http.StatusOK
		if resp.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, resp)
	})
}
