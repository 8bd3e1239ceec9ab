package newrelic

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// EchoMiddleware starts a transaction per request; with a nil app it is a pass-through
func EchoMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

// FromEchoContext returns the request's transaction, or nil
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// StartSegment opens a segment on the transaction in ctx. End the returned segment; nil is safe.
func StartSegment(ctx context.Context, name string) *newrelic.Segment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// RoundTripper records outbound calls as external segments of the transaction in the request context
func RoundTripper(base http.RoundTripper) http.RoundTripper {
	return newrelic.NewRoundTripper(base)
}
