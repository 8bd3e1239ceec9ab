package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/access"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/transaction"
	"github.com/piresc/campusride/services/trip"
	"github.com/piresc/campusride/services/users"
)

type transactionUC struct {
	cfg       *models.Config
	txnRepo   transaction.TransactionRepo
	paymentGW transaction.PaymentGW
	txnGW     transaction.TransactionGW
	tripUC    trip.TripUC
	tripGW    trip.TripGW
	userRepo  users.UserRepo
	validator *utils.Validator
}

// NewTransactionUC creates the transaction use case. Trips are resolved through
// the trip use case and seat events go out through the trip gateway.
func NewTransactionUC(
	cfg *models.Config,
	txnRepo transaction.TransactionRepo,
	paymentGW transaction.PaymentGW,
	txnGW transaction.TransactionGW,
	tripUC trip.TripUC,
	tripGW trip.TripGW,
	userRepo users.UserRepo,
) (transaction.TransactionUC, error) {
	return &transactionUC{
		cfg:       cfg,
		txnRepo:   txnRepo,
		paymentGW: paymentGW,
		txnGW:     txnGW,
		tripUC:    tripUC,
		tripGW:    tripGW,
		userRepo:  userRepo,
		validator: utils.NewValidator(),
	}, nil
}

// CheckoutTransactionID derives the transaction id from a payment reference,
// so every delivery of the same payment lands on the same document
func CheckoutTransactionID(reference string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("paystack:"+reference)).String()
}

// CreateTransaction records a payment without reserving a seat
func (uc *transactionUC) CreateTransaction(ctx context.Context, s *models.Session, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}
	trips, err := uc.tripUC.GetTripsByIDs(ctx, []string{req.TripID})
	if err != nil {
		return nil, err
	}
	if _, ok := trips[req.TripID]; !ok {
		return nil, apperror.NotFound("trip")
	}

	rec, err := uc.txnRepo.CreateTransaction(ctx, models.TransactionRecord{
		ID:        uuid.NewString(),
		DriverID:  req.DriverID,
		StudentID: req.StudentID,
		TripID:    req.TripID,
		Amount:    req.Amount,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create transaction", logger.String("trip_id", req.TripID), logger.Err(err))
		return nil, err
	}
	uc.publishRecorded(ctx, rec)

	return uc.resolveOne(ctx, rec)
}

// GetTransaction finds one transaction by id, else the latest for a student,
// else the latest for a driver
func (uc *transactionUC) GetTransaction(ctx context.Context, s *models.Session, q models.TransactionQuery) (*models.Transaction, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}

	var (
		rec *models.TransactionRecord
		err error
	)
	switch {
	case q.TrnxID != "":
		rec, err = uc.txnRepo.GetTransaction(ctx, q.TrnxID)
	case q.StudentID != "":
		rec, err = uc.txnRepo.FindLatestTransaction(ctx, models.TransactionFilter{StudentID: q.StudentID})
	case q.DriverID != "":
		rec, err = uc.txnRepo.FindLatestTransaction(ctx, models.TransactionFilter{DriverID: q.DriverID})
	default:
		return nil, apperror.InvalidQuery("Invalid search parameters")
	}
	if err != nil {
		return nil, err
	}
	return uc.resolveOne(ctx, rec)
}

// ListTransactions resolves the page with one batched read for trips and one for users
func (uc *transactionUC) ListTransactions(ctx context.Context, s *models.Session, filter models.TransactionFilter) (*models.Page[models.Transaction], error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	filter.PageRequest = filter.PageRequest.Normalize(uc.cfg.Trip.DefaultPageSize, uc.cfg.Trip.MaxPageSize)

	records, total, err := uc.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	txns, err := uc.resolveMany(ctx, records)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Transaction]{Data: txns, Pagination: models.NewPagination(total, filter.PageRequest)}, nil
}

func (uc *transactionUC) publishRecorded(ctx context.Context, rec *models.TransactionRecord) {
	if err := uc.txnGW.PublishTransactionRecorded(ctx, &models.TransactionRecordedEvent{
		TransactionID: rec.ID,
		TripID:        rec.TripID,
		DriverID:      rec.DriverID,
		StudentID:     rec.StudentID,
		Amount:        rec.Amount,
		Reference:     rec.Reference,
		RecordedAt:    rec.CreatedAt,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction recorded event", logger.String("transaction_id", rec.ID), logger.Err(err))
	}
}
