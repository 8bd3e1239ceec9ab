package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
)

// TripRepo implements trip.TripRepo on Firestore
type TripRepo struct {
	db *database.FirestoreClient
}

func NewTripRepository(db *database.FirestoreClient) *TripRepo {
	return &TripRepo{db: db}
}

func (r *TripRepo) col() *firestore.CollectionRef {
	return r.db.Client.Collection(constants.CollectionTrips)
}

func (r *TripRepo) CreateTrip(ctx context.Context, trip models.TripRecord) (*models.TripRecord, error) {
	if _, err := r.col().Doc(trip.ID).Create(ctx, r.db.TripDocFrom(trip)); err != nil {
		if database.IsAlreadyExists(err) {
			return nil, apperror.Conflict("trip already exists")
		}
		return nil, apperror.Persistence("create trip", err)
	}
	return r.GetTrip(ctx, trip.ID)
}

func (r *TripRepo) GetTrip(ctx context.Context, id string) (*models.TripRecord, error) {
	if id == "" {
		return nil, apperror.NotFound("trip")
	}
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("trip")
		}
		return nil, apperror.Persistence("get trip", err)
	}
	trip, err := database.DecodeTrip(snap)
	if err != nil {
		return nil, apperror.Persistence("get trip", err)
	}
	return &trip, nil
}

func (r *TripRepo) GetTripsByIDs(ctx context.Context, ids []string) (map[string]models.TripRecord, error) {
	snaps, err := r.db.GetAll(ctx, constants.CollectionTrips, ids)
	if err != nil {
		return nil, apperror.Persistence("get trips", err)
	}
	out := make(map[string]models.TripRecord, len(snaps))
	for id, snap := range snaps {
		trip, err := database.DecodeTrip(snap)
		if err != nil {
			return nil, apperror.Persistence("get trips", err)
		}
		out[id] = trip
	}
	return out, nil
}

// UpdateTrip reassigns the references set in req; occupants are never touched here
func (r *TripRepo) UpdateTrip(ctx context.Context, req models.UpdateTripRequest) (*models.TripRecord, error) {
	if req.ID == "" {
		return nil, apperror.NotFound("trip")
	}
	updates := []firestore.Update{{Path: constants.FieldUpdatedAt, Value: firestore.ServerTimestamp}}
	if req.DestinationID != nil {
		updates = append(updates, firestore.Update{
			Path:  constants.FieldDestination,
			Value: r.db.Ref(constants.CollectionRoutes, *req.DestinationID),
		})
	}
	if req.BusID != nil {
		updates = append(updates, firestore.Update{
			Path:  constants.FieldBus,
			Value: r.db.Ref(constants.CollectionBuses, *req.BusID),
		})
	}

	if _, err := r.col().Doc(req.ID).Update(ctx, updates); err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("trip")
		}
		return nil, apperror.Persistence("update trip", err)
	}
	return r.GetTrip(ctx, req.ID)
}

// ListTrips filters by occupant when StudentID is set, otherwise by driver when DriverID is set
func (r *TripRepo) ListTrips(ctx context.Context, filter models.TripFilter) ([]models.TripRecord, int64, error) {
	q := r.col().Query
	switch {
	case filter.StudentID != "":
		q = q.Where(constants.FieldOccupants, "array-contains", r.db.Ref(constants.CollectionUsers, filter.StudentID))
	case filter.DriverID != "":
		q = q.Where(constants.FieldDriver, "==", r.db.Ref(constants.CollectionUsers, filter.DriverID))
	}

	snaps, total, err := r.db.Page(ctx, q, filter.PageRequest)
	if err != nil {
		return nil, 0, apperror.Persistence("list trips", err)
	}
	trips := make([]models.TripRecord, 0, len(snaps))
	for _, snap := range snaps {
		trip, err := database.DecodeTrip(snap)
		if err != nil {
			return nil, 0, apperror.Persistence("list trips", err)
		}
		trips = append(trips, trip)
	}
	return trips, total, nil
}

func (r *TripRepo) DeleteTrip(ctx context.Context, id string) error {
	if id == "" {
		return apperror.NotFound("trip")
	}
	if _, err := r.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if database.IsNotFound(err) {
			return apperror.NotFound("trip")
		}
		return apperror.Persistence("delete trip", err)
	}
	return nil
}

// JoinTrip runs the membership check, the capacity check and the set-add in one
// transaction, so concurrent joins are serialized by the store.
func (r *TripRepo) JoinTrip(ctx context.Context, tripID, studentID string, enforceCapacity bool) (*models.TripRecord, bool, error) {
	var (
		result models.TripRecord
		joined bool
	)
	err := r.db.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		joined = false

		seats, err := r.db.ReadTripSeats(tx, tripID, enforceCapacity)
		if err != nil {
			return err
		}
		if seats.Trip.HasOccupant(studentID) {
			result = seats.Trip
			return nil
		}
		if enforceCapacity && seats.Full() {
			return apperror.Conflict("trip is full")
		}
		if err := r.db.AddOccupant(tx, seats, studentID); err != nil {
			return err
		}

		result = seats.Trip
		joined = true
		return nil
	})
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, false, err
		}
		return nil, false, apperror.Persistence("join trip", err)
	}
	return &result, joined, nil
}
