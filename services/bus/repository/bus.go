package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
)

// BusRepo implements bus.BusRepo on Firestore
type BusRepo struct {
	db *database.FirestoreClient
}

func NewBusRepository(db *database.FirestoreClient) *BusRepo {
	return &BusRepo{db: db}
}

func (r *BusRepo) col() *firestore.CollectionRef {
	return r.db.Client.Collection(constants.CollectionBuses)
}

func (r *BusRepo) CreateBus(ctx context.Context, bus models.Bus) (*models.Bus, error) {
	if _, err := r.col().Doc(bus.ID).Create(ctx, r.db.BusDocFrom(bus)); err != nil {
		if database.IsAlreadyExists(err) {
			return nil, apperror.Conflict("bus already exists")
		}
		return nil, apperror.Persistence("create bus", err)
	}
	return r.GetBus(ctx, bus.ID)
}

func (r *BusRepo) GetBus(ctx context.Context, id string) (*models.Bus, error) {
	if id == "" {
		return nil, apperror.NotFound("bus")
	}
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("bus")
		}
		return nil, apperror.Persistence("get bus", err)
	}
	bus, err := database.DecodeBus(snap)
	if err != nil {
		return nil, apperror.Persistence("get bus", err)
	}
	return &bus, nil
}

// GetBusesByIDs resolves ids in one batch; missing buses are absent from the result
func (r *BusRepo) GetBusesByIDs(ctx context.Context, ids []string) (map[string]models.Bus, error) {
	snaps, err := r.db.GetAll(ctx, constants.CollectionBuses, ids)
	if err != nil {
		return nil, apperror.Persistence("get buses", err)
	}
	out := make(map[string]models.Bus, len(snaps))
	for id, snap := range snaps {
		bus, err := database.DecodeBus(snap)
		if err != nil {
			return nil, apperror.Persistence("get buses", err)
		}
		out[id] = bus
	}
	return out, nil
}

func (r *BusRepo) UpdateBus(ctx context.Context, req models.UpdateBusRequest) (*models.Bus, error) {
	if req.ID == "" {
		return nil, apperror.NotFound("bus")
	}
	_, err := r.col().Doc(req.ID).Update(ctx, []firestore.Update{
		{Path: constants.FieldSeats, Value: int64(req.Seats)},
		{Path: constants.FieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("bus")
		}
		return nil, apperror.Persistence("update bus", err)
	}
	return r.GetBus(ctx, req.ID)
}

// ListBuses filters on the driver reference when filter.DriverID is set
func (r *BusRepo) ListBuses(ctx context.Context, filter models.BusFilter) ([]models.Bus, int64, error) {
	q := r.col().Query
	if filter.DriverID != "" {
		q = q.Where(constants.FieldDriver, "==", r.db.Ref(constants.CollectionUsers, filter.DriverID))
	}

	snaps, total, err := r.db.Page(ctx, q, filter.PageRequest)
	if err != nil {
		return nil, 0, apperror.Persistence("list buses", err)
	}
	buses := make([]models.Bus, 0, len(snaps))
	for _, snap := range snaps {
		bus, err := database.DecodeBus(snap)
		if err != nil {
			return nil, 0, apperror.Persistence("list buses", err)
		}
		buses = append(buses, bus)
	}
	return buses, total, nil
}

func (r *BusRepo) DeleteBus(ctx context.Context, id string) error {
	if id == "" {
		return apperror.NotFound("bus")
	}
	if _, err := r.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if database.IsNotFound(err) {
			return apperror.NotFound("bus")
		}
		return apperror.Persistence("delete bus", err)
	}
	return nil
}
