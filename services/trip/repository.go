package trip

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/campusride/services/trip TripRepo

// TripRepo persists trips with their references reduced to ids
type TripRepo interface {
	CreateTrip(ctx context.Context, trip models.TripRecord) (*models.TripRecord, error)
	GetTrip(ctx context.Context, id string) (*models.TripRecord, error)
	GetTripsByIDs(ctx context.Context, ids []string) (map[string]models.TripRecord, error)
	UpdateTrip(ctx context.Context, req models.UpdateTripRequest) (*models.TripRecord, error)
	ListTrips(ctx context.Context, filter models.TripFilter) ([]models.TripRecord, int64, error)
	DeleteTrip(ctx context.Context, id string) error

	// JoinTrip adds studentID to the trip's occupants atomically. joined is false
	// when the student already held a seat and nothing was written.
	JoinTrip(ctx context.Context, tripID, studentID string, enforceCapacity bool) (trip *models.TripRecord, joined bool, err error)
}
