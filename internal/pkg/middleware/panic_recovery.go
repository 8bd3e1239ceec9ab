package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/utils"
)

// PanicRecoveryWithZapMiddleware turns a handler panic into a 500 response,
// logs it with the stack and reports it to New Relic
func PanicRecoveryWithZapMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				req := c.Request()
				userID := "anonymous"
				if v := c.Get(userIDKey); v != nil {
					userID = fmt.Sprintf("%v", v)
				}
				msg := fmt.Sprintf("Panic recovered: %v", r)

				txn := newrelic.FromContext(req.Context())
				if txn != nil {
					txn.NoticeError(newrelic.Error{Message: msg, Class: "PanicError"})
				}

				zl.WithNewRelicContext(txn).Error("Panic recovered during request processing",
					logger.Any("panic_value", r),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", req.Method),
					logger.String("path", req.URL.Path),
					logger.String("user_id", userID),
					logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				)

				if c.Response().Committed {
					return
				}
				err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
			}()

			return next(c)
		}
	}
}
