package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	"github.com/piresc/campusride/services/transaction"
	gateway_http "github.com/piresc/campusride/services/transaction/gateway/http"
)

// TransactionGW publishes transaction events to NATS
type TransactionGW struct {
	natsClient *natspkg.Client
}

func NewTransactionGW(client *natspkg.Client) transaction.TransactionGW {
	return &TransactionGW{natsClient: client}
}

// NewPaymentGW returns the Paystack client
func NewPaymentGW(cfg models.PaystackConfig) transaction.PaymentGW {
	return gateway_http.NewPaystack(cfg)
}

// PublishTransactionRecorded publishes a transaction recorded event to NATS
func (g *TransactionGW) PublishTransactionRecorded(ctx context.Context, event *models.TransactionRecordedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectTransactionRecorded, event); err != nil {
		return fmt.Errorf("failed to publish transaction recorded event: %w", err)
	}
	logger.InfoCtx(ctx, "Published transaction recorded event",
		logger.String("transaction_id", event.TransactionID),
		logger.String("trip_id", event.TripID),
		logger.Int64("amount", event.Amount))
	return nil
}
