package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/access"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/route"
)

type routeUC struct {
	cfg       *models.Config
	routeRepo route.RouteRepo
}

// NewRouteUC creates the route catalog use case
func NewRouteUC(cfg *models.Config, routeRepo route.RouteRepo) (route.RouteUC, error) {
	return &routeUC{cfg: cfg, routeRepo: routeRepo}, nil
}

func (uc *routeUC) validateCost(cost int64) error {
	minCost := max(uc.cfg.Fare.Min, 1)
	if cost < minCost {
		return apperror.Validation(fmt.Sprintf("cost must be at least %d", minCost))
	}
	return nil
}

// CreateRoute validates the fare before anything is written
func (uc *routeUC) CreateRoute(ctx context.Context, s *models.Session, req models.CreateRouteRequest) (*models.Route, error) {
	if err := access.RequireRole(s, uc.cfg.Access.RouteWriteRoles); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Route)
	if name == "" {
		return nil, apperror.Validation("route is required")
	}
	if err := uc.validateCost(req.Cost); err != nil {
		return nil, err
	}

	created, err := uc.routeRepo.CreateRoute(ctx, models.Route{
		ID:    uuid.NewString(),
		Route: name,
		Cost:  req.Cost,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create route", logger.String("route", name), logger.Err(err))
		return nil, err
	}

	logger.Info("Route created", logger.String("route_id", created.ID), logger.String("user_id", s.UserID))
	return created, nil
}

func (uc *routeUC) UpdateRoute(ctx context.Context, s *models.Session, req models.UpdateRouteRequest) (*models.Route, error) {
	if err := access.RequireRole(s, uc.cfg.Access.RouteWriteRoles); err != nil {
		return nil, err
	}
	if req.Route != nil {
		name := strings.TrimSpace(*req.Route)
		if name == "" {
			return nil, apperror.Validation("route cannot be empty")
		}
		req.Route = &name
	}
	if req.Cost != nil {
		if err := uc.validateCost(*req.Cost); err != nil {
			return nil, err
		}
	}
	return uc.routeRepo.UpdateRoute(ctx, req)
}

func (uc *routeUC) GetRoute(ctx context.Context, s *models.Session, id string) (*models.Route, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	return uc.routeRepo.GetRoute(ctx, id)
}

// ListRoutes returns [] rather than nil for an empty catalog
func (uc *routeUC) ListRoutes(ctx context.Context, s *models.Session, page models.PageRequest) (*models.Page[models.Route], error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	page = page.Normalize(uc.cfg.Trip.DefaultPageSize, uc.cfg.Trip.MaxPageSize)

	routes, total, err := uc.routeRepo.ListRoutes(ctx, page)
	if err != nil {
		return nil, err
	}
	if routes == nil {
		routes = []models.Route{}
	}
	return &models.Page[models.Route]{Data: routes, Pagination: models.NewPagination(total, page)}, nil
}

func (uc *routeUC) DeleteRoute(ctx context.Context, s *models.Session, id string) error {
	if err := access.RequireRole(s, uc.cfg.Access.RouteWriteRoles); err != nil {
		return err
	}
	if err := uc.routeRepo.DeleteRoute(ctx, id); err != nil {
		return err
	}
	logger.Info("Route deleted", logger.String("route_id", id), logger.String("user_id", s.UserID))
	return nil
}
