package route

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// RouteRepo persists routes. Lookups of a missing id fail with apperror.KindNotFound.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/campusride/services/route RouteRepo
type RouteRepo interface {
	CreateRoute(ctx context.Context, route models.Route) (*models.Route, error)
	GetRoute(ctx context.Context, id string) (*models.Route, error)
	GetRoutesByIDs(ctx context.Context, ids []string) (map[string]models.Route, error)
	UpdateRoute(ctx context.Context, req models.UpdateRouteRequest) (*models.Route, error)
	ListRoutes(ctx context.Context, page models.PageRequest) ([]models.Route, int64, error)
	DeleteRoute(ctx context.Context, id string) error
}
