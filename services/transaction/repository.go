package transaction

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/campusride/services/transaction TransactionRepo

// TransactionRepo persists payment records
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn models.TransactionRecord) (*models.TransactionRecord, error)
	GetTransaction(ctx context.Context, id string) (*models.TransactionRecord, error)
	// FindLatestTransaction returns the newest transaction matching filter,
	// which selects by student first, then by driver
	FindLatestTransaction(ctx context.Context, filter models.TransactionFilter) (*models.TransactionRecord, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionRecord, int64, error)

	// RecordCheckout creates txn and seats its student on its trip in one
	// transaction. A transaction that already exists under txn.ID is returned
	// unchanged with Created false when it is for the same student and trip,
	// otherwise the call fails with Conflict.
	RecordCheckout(ctx context.Context, txn models.TransactionRecord, enforceCapacity bool) (*models.RecordedCheckout, error)
}
