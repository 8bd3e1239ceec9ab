package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
)

// TransactionRepo implements transaction.TransactionRepo on Firestore
type TransactionRepo struct {
	db *database.FirestoreClient
}

func NewTransactionRepository(db *database.FirestoreClient) *TransactionRepo {
	return &TransactionRepo{db: db}
}

func (r *TransactionRepo) col() *firestore.CollectionRef {
	return r.db.Client.Collection(constants.CollectionTransactions)
}

func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn models.TransactionRecord) (*models.TransactionRecord, error) {
	if _, err := r.col().Doc(txn.ID).Create(ctx, r.db.TransactionDocFrom(txn)); err != nil {
		if database.IsAlreadyExists(err) {
			return nil, apperror.Conflict("transaction already exists")
		}
		return nil, apperror.Persistence("create transaction", err)
	}
	return r.GetTransaction(ctx, txn.ID)
}

func (r *TransactionRepo) GetTransaction(ctx context.Context, id string) (*models.TransactionRecord, error) {
	if id == "" {
		return nil, apperror.NotFound("transaction")
	}
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("transaction")
		}
		return nil, apperror.Persistence("get transaction", err)
	}
	txn, err := database.DecodeTransaction(snap)
	if err != nil {
		return nil, apperror.Persistence("get transaction", err)
	}
	return &txn, nil
}

// filtered applies the party filter: student wins over driver
func (r *TransactionRepo) filtered(filter models.TransactionFilter) firestore.Query {
	q := r.col().Query
	switch {
	case filter.StudentID != "":
		q = q.Where(constants.FieldStudent, "==", r.db.Ref(constants.CollectionUsers, filter.StudentID))
	case filter.DriverID != "":
		q = q.Where(constants.FieldDriver, "==", r.db.Ref(constants.CollectionUsers, filter.DriverID))
	}
	return q
}

func (r *TransactionRepo) FindLatestTransaction(ctx context.Context, filter models.TransactionFilter) (*models.TransactionRecord, error) {
	snaps, err := r.filtered(filter).
		OrderBy(constants.FieldCreatedAt, firestore.Desc).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, apperror.Persistence("find transaction", err)
	}
	if len(snaps) == 0 {
		return nil, apperror.NotFound("transaction")
	}
	txn, err := database.DecodeTransaction(snaps[0])
	if err != nil {
		return nil, apperror.Persistence("find transaction", err)
	}
	return &txn, nil
}

func (r *TransactionRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionRecord, int64, error) {
	snaps, total, err := r.db.Page(ctx, r.filtered(filter), filter.PageRequest)
	if err != nil {
		return nil, 0, apperror.Persistence("list transactions", err)
	}
	txns := make([]models.TransactionRecord, 0, len(snaps))
	for _, snap := range snaps {
		txn, err := database.DecodeTransaction(snap)
		if err != nil {
			return nil, 0, apperror.Persistence("list transactions", err)
		}
		txns = append(txns, txn)
	}
	return txns, total, nil
}

// RecordCheckout reads the trip, its bus and any earlier record of the same
// payment before writing, so a replayed payment never seats or charges twice.
func (r *TransactionRepo) RecordCheckout(ctx context.Context, txn models.TransactionRecord, enforceCapacity bool) (*models.RecordedCheckout, error) {
	txnRef := r.db.Ref(constants.CollectionTransactions, txn.ID)
	if txnRef == nil {
		return nil, apperror.Validation("transaction id is required")
	}

	var result models.RecordedCheckout
	err := r.db.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result = models.RecordedCheckout{}

		seats, err := r.db.ReadTripSeats(tx, txn.TripID, enforceCapacity)
		if err != nil {
			return err
		}
		existing, err := tx.Get(txnRef)
		switch {
		case err == nil:
			recorded, err := database.DecodeTransaction(existing)
			if err != nil {
				return err
			}
			if recorded.StudentID != txn.StudentID || recorded.TripID != txn.TripID {
				return apperror.Conflict(apperror.MsgReferenceUsed)
			}
			result.Transaction = recorded
			result.Occupants = len(seats.Trip.OccupantIDs)
			return nil
		case !database.IsNotFound(err):
			return err
		}

		if !seats.Trip.HasOccupant(txn.StudentID) {
			if enforceCapacity && seats.Full() {
				return apperror.Conflict("trip is full")
			}
			if err := r.db.AddOccupant(tx, seats, txn.StudentID); err != nil {
				return err
			}
			result.Joined = true
		}

		txn.DriverID = seats.Trip.DriverID
		if err := tx.Create(txnRef, r.db.TransactionDocFrom(txn)); err != nil {
			return err
		}

		now := time.Now().UTC()
		txn.CreatedAt, txn.UpdatedAt = now, now
		result.Transaction = txn
		result.Created = true
		result.Occupants = len(seats.Trip.OccupantIDs)
		return nil
	})
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.Persistence("record checkout", err)
	}
	return &result, nil
}
