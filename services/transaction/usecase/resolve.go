package usecase

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
)

type parties struct {
	trips map[string]models.Trip
	users map[string]models.User
}

func (uc *transactionUC) loadParties(ctx context.Context, records []models.TransactionRecord) (*parties, error) {
	tripIDs := make([]string, 0, len(records))
	userIDs := make([]string, 0, 2*len(records))
	for _, rec := range records {
		tripIDs = append(tripIDs, rec.TripID)
		userIDs = append(userIDs, rec.DriverID, rec.StudentID)
	}

	trips, err := uc.tripUC.GetTripsByIDs(ctx, tripIDs)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return &parties{trips: trips, users: users}, nil
}

// user falls back to a bare id for accounts that were deprovisioned
func (p *parties) user(id string) models.User {
	if u, ok := p.users[id]; ok {
		return u
	}
	return models.User{ID: id}
}

// assemble fails with NotFound when the trip can no longer be resolved
func (p *parties) assemble(rec models.TransactionRecord) (models.Transaction, error) {
	trip, ok := p.trips[rec.TripID]
	if !ok {
		return models.Transaction{}, apperror.NotFound("trip")
	}
	return models.Transaction{
		ID:        rec.ID,
		Driver:    p.user(rec.DriverID),
		Student:   p.user(rec.StudentID),
		Trip:      trip,
		Amount:    rec.Amount,
		Reference: rec.Reference,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

func (uc *transactionUC) resolveOne(ctx context.Context, rec *models.TransactionRecord) (*models.Transaction, error) {
	p, err := uc.loadParties(ctx, []models.TransactionRecord{*rec})
	if err != nil {
		return nil, err
	}
	txn, err := p.assemble(*rec)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// resolveMany keeps the order of records and drops transactions whose trip is gone
func (uc *transactionUC) resolveMany(ctx context.Context, records []models.TransactionRecord) ([]models.Transaction, error) {
	txns := make([]models.Transaction, 0, len(records))
	if len(records) == 0 {
		return txns, nil
	}

	p, err := uc.loadParties(ctx, records)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		txn, err := p.assemble(rec)
		if err != nil {
			logger.WarnCtx(ctx, "Dropping transaction with missing trip",
				logger.String("transaction_id", rec.ID),
				logger.String("trip_id", rec.TripID))
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
