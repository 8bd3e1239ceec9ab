package bus

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// BusUC manages the bus registry. Buses belong to the driver who registered them.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/campusride/services/bus BusUC
type BusUC interface {
	CreateBus(ctx context.Context, s *models.Session, req models.CreateBusRequest) (*models.Bus, error)
	UpdateBus(ctx context.Context, s *models.Session, req models.UpdateBusRequest) (*models.Bus, error)
	GetBus(ctx context.Context, s *models.Session, id string) (*models.Bus, error)
	ListBuses(ctx context.Context, s *models.Session, filter models.BusFilter) (*models.Page[models.Bus], error)
	DeleteBus(ctx context.Context, s *models.Session, id string) error
}
