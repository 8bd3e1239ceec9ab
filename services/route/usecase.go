package route

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// RouteUC manages the route catalog
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/campusride/services/route RouteUC
type RouteUC interface {
	CreateRoute(ctx context.Context, s *models.Session, req models.CreateRouteRequest) (*models.Route, error)
	UpdateRoute(ctx context.Context, s *models.Session, req models.UpdateRouteRequest) (*models.Route, error)
	GetRoute(ctx context.Context, s *models.Session, id string) (*models.Route, error)
	ListRoutes(ctx context.Context, s *models.Session, page models.PageRequest) (*models.Page[models.Route], error)
	DeleteRoute(ctx context.Context, s *models.Session, id string) error
}
