package database

import (
	"time"

	"cloud.google.com/go/firestore"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/models"
)

// TripSeats is a trip read inside a transaction together with its bus capacity
type TripSeats struct {
	Ref   *firestore.DocumentRef
	Trip  models.TripRecord
	Seats int // zero when the bus was not read
}

// Full reports whether every seat is taken
func (s *TripSeats) Full() bool {
	return len(s.Trip.OccupantIDs) >= s.Seats
}

// ReadTripSeats reads tripID, and its bus when withBus is set, inside tx.
// It must run before any write in tx.
func (f *FirestoreClient) ReadTripSeats(tx *firestore.Transaction, tripID string, withBus bool) (*TripSeats, error) {
	ref := f.Ref(constants.CollectionTrips, tripID)
	if ref == nil {
		return nil, apperror.NotFound("trip")
	}

	snap, err := tx.Get(ref)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperror.NotFound("trip")
		}
		return nil, apperror.Persistence("read trip", err)
	}
	trip, err := DecodeTrip(snap)
	if err != nil {
		return nil, apperror.Persistence("read trip", err)
	}

	seats := &TripSeats{Ref: ref, Trip: trip}
	if !withBus {
		return seats, nil
	}

	busRef := f.Ref(constants.CollectionBuses, trip.BusID)
	if busRef == nil {
		return nil, apperror.NotFound("bus")
	}
	busSnap, err := tx.Get(busRef)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperror.NotFound("bus")
		}
		return nil, apperror.Persistence("read bus", err)
	}
	bus, err := DecodeBus(busSnap)
	if err != nil {
		return nil, apperror.Persistence("read bus", err)
	}
	seats.Seats = bus.Seats
	return seats, nil
}

// AddOccupant set-adds studentID to the trip's occupants inside tx
func (f *FirestoreClient) AddOccupant(tx *firestore.Transaction, seats *TripSeats, studentID string) error {
	err := tx.Update(seats.Ref, []firestore.Update{
		{Path: constants.FieldOccupants, Value: firestore.ArrayUnion(f.Ref(constants.CollectionUsers, studentID))},
		{Path: constants.FieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return err
	}
	seats.Trip.OccupantIDs = append(seats.Trip.OccupantIDs, studentID)
	seats.Trip.UpdatedAt = time.Now().UTC()
	return nil
}
