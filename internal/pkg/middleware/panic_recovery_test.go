package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{"string panic", "test panic message"},
		{"error panic", errors.New("test error panic")},
		{"nil map write", map[string]int{"x": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(userIDKey, "u-1")

			h := PanicRecoveryWithZapMiddleware(bufferedLogger(&buf))(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			err := h(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), "Internal server error")
			assert.Contains(t, buf.String(), "Panic recovered during request processing")
			assert.Contains(t, buf.String(), "stack_trace")
			assert.Contains(t, buf.String(), "u-1")
		})
	}
}

func TestPanicRecoveryWithZapMiddleware_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	h := PanicRecoveryWithZapMiddleware(bufferedLogger(&buf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}
