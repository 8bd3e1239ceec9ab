package transaction

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/campusride/services/transaction PaymentGW,TransactionGW

// PaymentGW talks to the payment provider
type PaymentGW interface {
	VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error)
	// ValidSignature checks a webhook delivery against the shared secret
	ValidSignature(signature string, body []byte) bool
}

// TransactionGW publishes transaction events
type TransactionGW interface {
	PublishTransactionRecorded(ctx context.Context, event *models.TransactionRecordedEvent) error
}
