package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/database/dbtest"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrip(t *testing.T, db *database.FirestoreClient, seats int, occupants ...string) string {
	t.Helper()
	ctx := context.Background()
	busID, tripID := uuid.NewString(), uuid.NewString()

	_, err := db.Client.Collection(constants.CollectionBuses).Doc(busID).
		Set(ctx, db.BusDocFrom(models.Bus{ID: busID, Seats: seats, DriverID: "driver-1"}))
	require.NoError(t, err)
	_, err = db.Client.Collection(constants.CollectionTrips).Doc(tripID).
		Set(ctx, db.TripDocFrom(models.TripRecord{
			ID: tripID, DestinationID: "route-1", BusID: busID, DriverID: "driver-1", OccupantIDs: occupants,
		}))
	require.NoError(t, err)
	return tripID
}

func occupants(t *testing.T, db *database.FirestoreClient, tripID string) []string {
	t.Helper()
	snap, err := db.Client.Collection(constants.CollectionTrips).Doc(tripID).Get(context.Background())
	require.NoError(t, err)
	trip, err := database.DecodeTrip(snap)
	require.NoError(t, err)
	return trip.OccupantIDs
}

func TestTransactionRepo_FilteredListing(t *testing.T) {
	repo := NewTransactionRepository(dbtest.Firestore(t))
	ctx := context.Background()

	parties := []struct{ driver, student string }{
		{"d-1", "s-1"}, {"d-1", "s-2"}, {"d-2", "s-1"}, {"d-2", "s-3"},
	}
	for _, p := range parties {
		_, err := repo.CreateTransaction(ctx, models.TransactionRecord{
			ID: uuid.NewString(), DriverID: p.driver, StudentID: p.student, TripID: "trip-1", Amount: 500,
		})
		require.NoError(t, err)
	}

	page := models.PageRequest{Page: 1, Limit: 50}
	all, total, err := repo.ListTransactions(ctx, models.TransactionFilter{PageRequest: page})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byDriver := map[string]bool{}
	for _, d := range []string{"d-1", "d-2"} {
		txns, _, err := repo.ListTransactions(ctx, models.TransactionFilter{DriverID: d, PageRequest: page})
		require.NoError(t, err)
		for _, txn := range txns {
			assert.Equal(t, d, txn.DriverID)
			byDriver[txn.ID] = true
		}
	}
	assert.Len(t, byDriver, len(all))

	mine, total, err := repo.ListTransactions(ctx, models.TransactionFilter{StudentID: "s-1", DriverID: "d-1", PageRequest: page})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, txn := range mine {
		assert.Equal(t, "s-1", txn.StudentID)
	}

	latest, err := repo.FindLatestTransaction(ctx, models.TransactionFilter{StudentID: "s-3"})
	require.NoError(t, err)
	assert.Equal(t, "d-2", latest.DriverID)

	_, err = repo.FindLatestTransaction(ctx, models.TransactionFilter{DriverID: "nobody"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestTransactionRepo_RecordCheckout(t *testing.T) {
	db := dbtest.Firestore(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	tripID := seedTrip(t, db, 14)

	txn := models.TransactionRecord{ID: uuid.NewString(), StudentID: "s-1", TripID: tripID, Amount: 500, Reference: "ref-1"}

	first, err := repo.RecordCheckout(ctx, txn, true)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.True(t, first.Joined)
	assert.Equal(t, "driver-1", first.Transaction.DriverID)
	assert.Equal(t, 1, first.Occupants)

	replay, err := repo.RecordCheckout(ctx, txn, true)
	require.NoError(t, err)
	assert.False(t, replay.Created)
	assert.False(t, replay.Joined)
	assert.Equal(t, "ref-1", replay.Transaction.Reference)

	assert.Equal(t, []string{"s-1"}, occupants(t, db, tripID))
	_, total, err := repo.ListTransactions(ctx, models.TransactionFilter{StudentID: "s-1", PageRequest: models.PageRequest{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTransactionRepo_RecordCheckout_ConcurrentReplay(t *testing.T) {
	db := dbtest.Firestore(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	tripID := seedTrip(t, db, 14)
	txn := models.TransactionRecord{ID: uuid.NewString(), StudentID: "s-1", TripID: tripID, Amount: 500, Reference: "ref-2"}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := repo.RecordCheckout(ctx, txn, true)
			if !assert.NoError(t, err) {
				return
			}
			if res.Created {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, []string{"s-1"}, occupants(t, db, tripID))
}

func TestTransactionRepo_RecordCheckout_ReferenceUsedElsewhere(t *testing.T) {
	db := dbtest.Firestore(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	tripID := seedTrip(t, db, 14)
	otherTripID := seedTrip(t, db, 14)
	txn := models.TransactionRecord{ID: uuid.NewString(), StudentID: "s-2", TripID: tripID, Amount: 500, Reference: "ref-3"}

	_, err := repo.RecordCheckout(ctx, txn, true)
	require.NoError(t, err)

	tests := []struct {
		name      string
		studentID string
		tripID    string
	}{
		{"another student", "s-1", tripID},
		{"another trip", "s-2", otherTripID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reuse := txn
			reuse.StudentID, reuse.TripID = tt.studentID, tt.tripID

			res, err := repo.RecordCheckout(ctx, reuse, true)

			assert.Nil(t, res)
			assert.True(t, apperror.Is(err, apperror.KindConflict))
			assert.Equal(t, apperror.MsgReferenceUsed, apperror.Message(err))
		})
	}
	assert.Equal(t, []string{"s-2"}, occupants(t, db, tripID))
	assert.Empty(t, occupants(t, db, otherTripID))
}

func TestTransactionRepo_RecordCheckout_AlreadySeated(t *testing.T) {
	db := dbtest.Firestore(t)
	repo := NewTransactionRepository(db)
	tripID := seedTrip(t, db, 1, "s-1")

	res, err := repo.RecordCheckout(context.Background(),
		models.TransactionRecord{ID: uuid.NewString(), StudentID: "s-1", TripID: tripID, Amount: 500}, true)

	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.False(t, res.Joined)
	assert.Equal(t, []string{"s-1"}, occupants(t, db, tripID))
}

func TestTransactionRepo_RecordCheckout_Full(t *testing.T) {
	db := dbtest.Firestore(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	tripID := seedTrip(t, db, 1, "s-1")
	id := uuid.NewString()

	_, err := repo.RecordCheckout(ctx, models.TransactionRecord{ID: id, StudentID: "s-2", TripID: tripID, Amount: 500}, true)

	assert.True(t, apperror.Is(err, apperror.KindConflict))
	_, err = repo.GetTransaction(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
}
