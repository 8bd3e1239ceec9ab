package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
)

// RouteRepo implements route.RouteRepo on Firestore
type RouteRepo struct {
	db *database.FirestoreClient
}

func NewRouteRepository(db *database.FirestoreClient) *RouteRepo {
	return &RouteRepo{db: db}
}

func (r *RouteRepo) col() *firestore.CollectionRef {
	return r.db.Client.Collection(constants.CollectionRoutes)
}

// CreateRoute writes the route under its pre-assigned id in a single create
func (r *RouteRepo) CreateRoute(ctx context.Context, route models.Route) (*models.Route, error) {
	if _, err := r.col().Doc(route.ID).Create(ctx, r.db.RouteDocFrom(route)); err != nil {
		if database.IsAlreadyExists(err) {
			return nil, apperror.Conflict("route already exists")
		}
		return nil, apperror.Persistence("create route", err)
	}
	return r.GetRoute(ctx, route.ID)
}

func (r *RouteRepo) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	if id == "" {
		return nil, apperror.NotFound("route")
	}
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("route")
		}
		return nil, apperror.Persistence("get route", err)
	}
	route, err := database.DecodeRoute(snap)
	if err != nil {
		return nil, apperror.Persistence("get route", err)
	}
	return &route, nil
}

// GetRoutesByIDs resolves ids in one batch; missing routes are absent from the result
func (r *RouteRepo) GetRoutesByIDs(ctx context.Context, ids []string) (map[string]models.Route, error) {
	snaps, err := r.db.GetAll(ctx, constants.CollectionRoutes, ids)
	if err != nil {
		return nil, apperror.Persistence("get routes", err)
	}
	out := make(map[string]models.Route, len(snaps))
	for id, snap := range snaps {
		route, err := database.DecodeRoute(snap)
		if err != nil {
			return nil, apperror.Persistence("get routes", err)
		}
		out[id] = route
	}
	return out, nil
}

func (r *RouteRepo) UpdateRoute(ctx context.Context, req models.UpdateRouteRequest) (*models.Route, error) {
	if req.ID == "" {
		return nil, apperror.NotFound("route")
	}
	updates := []firestore.Update{{Path: constants.FieldUpdatedAt, Value: firestore.ServerTimestamp}}
	if req.Route != nil {
		updates = append(updates, firestore.Update{Path: constants.FieldRoute, Value: *req.Route})
	}
	if req.Cost != nil {
		updates = append(updates, firestore.Update{Path: constants.FieldCost, Value: *req.Cost})
	}

	if _, err := r.col().Doc(req.ID).Update(ctx, updates); err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("route")
		}
		return nil, apperror.Persistence("update route", err)
	}
	return r.GetRoute(ctx, req.ID)
}

func (r *RouteRepo) ListRoutes(ctx context.Context, page models.PageRequest) ([]models.Route, int64, error) {
	snaps, total, err := r.db.Page(ctx, r.col().Query, page)
	if err != nil {
		return nil, 0, apperror.Persistence("list routes", err)
	}
	routes := make([]models.Route, 0, len(snaps))
	for _, snap := range snaps {
		route, err := database.DecodeRoute(snap)
		if err != nil {
			return nil, 0, apperror.Persistence("list routes", err)
		}
		routes = append(routes, route)
	}
	return routes, total, nil
}

func (r *RouteRepo) DeleteRoute(ctx context.Context, id string) error {
	if id == "" {
		return apperror.NotFound("route")
	}
	if _, err := r.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if database.IsNotFound(err) {
			return apperror.NotFound("route")
		}
		return apperror.Persistence("delete route", err)
	}
	return nil
}
