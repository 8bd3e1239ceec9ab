package usecase

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
)

// references holds everything a page of trips points at, fetched with one
// batched read per collection
type references struct {
	routes map[string]models.Route
	buses  map[string]models.Bus
	users  map[string]models.User
}

func (uc *tripUC) loadReferences(ctx context.Context, records []models.TripRecord) (*references, error) {
	routeIDs := make([]string, 0, len(records))
	busIDs := make([]string, 0, len(records))
	userIDs := make([]string, 0, len(records))
	for _, rec := range records {
		routeIDs = append(routeIDs, rec.DestinationID)
		busIDs = append(busIDs, rec.BusID)
		userIDs = append(userIDs, rec.DriverID)
		userIDs = append(userIDs, rec.OccupantIDs...)
	}

	routes, err := uc.routeRepo.GetRoutesByIDs(ctx, routeIDs)
	if err != nil {
		return nil, err
	}
	buses, err := uc.busRepo.GetBusesByIDs(ctx, busIDs)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return &references{routes: routes, buses: buses, users: users}, nil
}

// assemble fails with NotFound naming the first required reference that is
// missing. Occupants that no longer exist are dropped.
func (refs *references) assemble(rec models.TripRecord) (models.Trip, error) {
	destination, ok := refs.routes[rec.DestinationID]
	if !ok {
		return models.Trip{}, apperror.NotFound("destination")
	}
	bus, ok := refs.buses[rec.BusID]
	if !ok {
		return models.Trip{}, apperror.NotFound("bus")
	}
	driver, ok := refs.users[rec.DriverID]
	if !ok {
		return models.Trip{}, apperror.NotFound("driver")
	}

	occupants := make([]models.User, 0, len(rec.OccupantIDs))
	for _, id := range rec.OccupantIDs {
		if u, ok := refs.users[id]; ok {
			occupants = append(occupants, u)
		}
	}

	return models.Trip{
		ID:          rec.ID,
		Destination: destination,
		Bus:         bus,
		Driver:      driver,
		Occupants:   occupants,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

func (uc *tripUC) resolveOne(ctx context.Context, rec *models.TripRecord) (*models.Trip, error) {
	refs, err := uc.loadReferences(ctx, []models.TripRecord{*rec})
	if err != nil {
		return nil, err
	}
	trip, err := refs.assemble(*rec)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// resolveMany keeps the order of records and drops trips with dangling references
func (uc *tripUC) resolveMany(ctx context.Context, records []models.TripRecord) ([]models.Trip, error) {
	trips := make([]models.Trip, 0, len(records))
	if len(records) == 0 {
		return trips, nil
	}

	refs, err := uc.loadReferences(ctx, records)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		trip, err := refs.assemble(rec)
		if err != nil {
			logger.WarnCtx(ctx, "Dropping trip with missing reference",
				logger.String("trip_id", rec.ID),
				logger.String("reason", apperror.Message(err)))
			continue
		}
		trips = append(trips, trip)
	}
	return trips, nil
}
