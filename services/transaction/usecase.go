package transaction

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/campusride/services/transaction TransactionUC

// TransactionUC records payments and the seats they pay for
type TransactionUC interface {
	CreateTransaction(ctx context.Context, s *models.Session, req models.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, s *models.Session, q models.TransactionQuery) (*models.Transaction, error)
	ListTransactions(ctx context.Context, s *models.Session, filter models.TransactionFilter) (*models.Page[models.Transaction], error)
	Checkout(ctx context.Context, s *models.Session, req models.CheckoutRequest) (*models.CheckoutResult, error)
	HandlePaymentWebhook(ctx context.Context, signature string, body []byte) error
}
