package bus

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// BusRepo persists buses. Lookups of a missing id fail with apperror.KindNotFound.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/campusride/services/bus BusRepo
type BusRepo interface {
	CreateBus(ctx context.Context, bus models.Bus) (*models.Bus, error)
	GetBus(ctx context.Context, id string) (*models.Bus, error)
	GetBusesByIDs(ctx context.Context, ids []string) (map[string]models.Bus, error)
	UpdateBus(ctx context.Context, req models.UpdateBusRequest) (*models.Bus, error)
	ListBuses(ctx context.Context, filter models.BusFilter) ([]models.Bus, int64, error)
	DeleteBus(ctx context.Context, id string) error
}
