package trip

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/campusride/services/trip TripUC

// TripUC manages trips and seat reservations
type TripUC interface {
	CreateTrip(ctx context.Context, s *models.Session, req models.CreateTripRequest) (*models.Trip, error)
	UpdateTrip(ctx context.Context, s *models.Session, req models.UpdateTripRequest) (*models.Trip, error)
	JoinTrip(ctx context.Context, s *models.Session, req models.JoinTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, s *models.Session, id string) (*models.Trip, error)
	ListTrips(ctx context.Context, s *models.Session, filter models.TripFilter) (*models.Page[models.Trip], error)
	DeleteTrip(ctx context.Context, s *models.Session, id string) error

	// GetTripsByIDs resolves trips for other components. Trips that cannot be
	// resolved are absent from the result.
	GetTripsByIDs(ctx context.Context, ids []string) (map[string]models.Trip, error)
}
