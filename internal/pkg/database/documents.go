package database

import (
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/models"
)

// Document shapes as persisted. Cross-entity links are document references,
// timestamps are stamped by the server when left zero.

type UserDoc struct {
	ID        string    `firestore:"id"`
	Email     string    `firestore:"email"`
	Name      string    `firestore:"name"`
	Role      string    `firestore:"role"`
	FCMToken  string    `firestore:"fcmToken,omitempty"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

type RouteDoc struct {
	ID        string    `firestore:"id"`
	Route     string    `firestore:"route"`
	Cost      int64     `firestore:"cost"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

type BusDoc struct {
	ID        string                 `firestore:"id"`
	Seats     int64                  `firestore:"seats"`
	Driver    *firestore.DocumentRef `firestore:"driver"`
	CreatedAt time.Time              `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time              `firestore:"updatedAt,serverTimestamp"`
}

type TripDoc struct {
	ID          string                   `firestore:"id"`
	Destination *firestore.DocumentRef   `firestore:"destination"`
	Bus         *firestore.DocumentRef   `firestore:"bus"`
	Driver      *firestore.DocumentRef   `firestore:"driver"`
	Occupants   []*firestore.DocumentRef `firestore:"occupants"`
	CreatedAt   time.Time                `firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time                `firestore:"updatedAt,serverTimestamp"`
}

type TransactionDoc struct {
	ID        string                 `firestore:"id"`
	Driver    *firestore.DocumentRef `firestore:"driver"`
	Student   *firestore.DocumentRef `firestore:"student"`
	Trip      *firestore.DocumentRef `firestore:"trip"`
	Amount    int64                  `firestore:"amount"`
	Reference string                 `firestore:"reference,omitempty"`
	CreatedAt time.Time              `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time              `firestore:"updatedAt,serverTimestamp"`
}

func (f *FirestoreClient) UserDocFrom(u models.User) UserDoc {
	return UserDoc{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role), FCMToken: u.FCMToken}
}

func (f *FirestoreClient) RouteDocFrom(r models.Route) RouteDoc {
	return RouteDoc{ID: r.ID, Route: r.Route, Cost: r.Cost}
}

func (f *FirestoreClient) BusDocFrom(b models.Bus) BusDoc {
	return BusDoc{
		ID:     b.ID,
		Seats:  int64(b.Seats),
		Driver: f.Ref(constants.CollectionUsers, b.DriverID),
	}
}

func (f *FirestoreClient) TripDocFrom(t models.TripRecord) TripDoc {
	return TripDoc{
		ID:          t.ID,
		Destination: f.Ref(constants.CollectionRoutes, t.DestinationID),
		Bus:         f.Ref(constants.CollectionBuses, t.BusID),
		Driver:      f.Ref(constants.CollectionUsers, t.DriverID),
		Occupants:   f.Refs(constants.CollectionUsers, t.OccupantIDs),
	}
}

func (f *FirestoreClient) TransactionDocFrom(t models.TransactionRecord) TransactionDoc {
	return TransactionDoc{
		ID:        t.ID,
		Driver:    f.Ref(constants.CollectionUsers, t.DriverID),
		Student:   f.Ref(constants.CollectionUsers, t.StudentID),
		Trip:      f.Ref(constants.CollectionTrips, t.TripID),
		Amount:    t.Amount,
		Reference: t.Reference,
	}
}

// The decoders below trust the document name over the stored id field.

func DecodeUser(snap *firestore.DocumentSnapshot) (models.User, error) {
	var d UserDoc
	if err := snap.DataTo(&d); err != nil {
		return models.User{}, fmt.Errorf("decode user %s: %w", snap.Ref.ID, err)
	}
	role, _ := models.ParseRole(d.Role)
	return models.User{
		ID:        snap.Ref.ID,
		Email:     d.Email,
		Name:      d.Name,
		Role:      role,
		FCMToken:  d.FCMToken,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func DecodeRoute(snap *firestore.DocumentSnapshot) (models.Route, error) {
	var d RouteDoc
	if err := snap.DataTo(&d); err != nil {
		return models.Route{}, fmt.Errorf("decode route %s: %w", snap.Ref.ID, err)
	}
	return models.Route{
		ID:        snap.Ref.ID,
		Route:     d.Route,
		Cost:      d.Cost,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func DecodeBus(snap *firestore.DocumentSnapshot) (models.Bus, error) {
	var d BusDoc
	if err := snap.DataTo(&d); err != nil {
		return models.Bus{}, fmt.Errorf("decode bus %s: %w", snap.Ref.ID, err)
	}
	return models.Bus{
		ID:        snap.Ref.ID,
		Seats:     int(d.Seats),
		DriverID:  RefID(d.Driver),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func DecodeTrip(snap *firestore.DocumentSnapshot) (models.TripRecord, error) {
	var d TripDoc
	if err := snap.DataTo(&d); err != nil {
		return models.TripRecord{}, fmt.Errorf("decode trip %s: %w", snap.Ref.ID, err)
	}
	return models.TripRecord{
		ID:            snap.Ref.ID,
		DestinationID: RefID(d.Destination),
		BusID:         RefID(d.Bus),
		DriverID:      RefID(d.Driver),
		OccupantIDs:   RefIDs(d.Occupants),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

func DecodeTransaction(snap *firestore.DocumentSnapshot) (models.TransactionRecord, error) {
	var d TransactionDoc
	if err := snap.DataTo(&d); err != nil {
		return models.TransactionRecord{}, fmt.Errorf("decode transaction %s: %w", snap.Ref.ID, err)
	}
	return models.TransactionRecord{
		ID:        snap.Ref.ID,
		DriverID:  RefID(d.Driver),
		StudentID: RefID(d.Student),
		TripID:    RefID(d.Trip),
		Amount:    d.Amount,
		Reference: d.Reference,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
