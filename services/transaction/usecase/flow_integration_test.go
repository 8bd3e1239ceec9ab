package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/campusride/internal/pkg/database/dbtest"
	"github.com/piresc/campusride/internal/pkg/models"
	busrepo "github.com/piresc/campusride/services/bus/repository"
	busuc "github.com/piresc/campusride/services/bus/usecase"
	routerepo "github.com/piresc/campusride/services/route/repository"
	routeuc "github.com/piresc/campusride/services/route/usecase"
	"github.com/piresc/campusride/services/transaction/mocks"
	txnrepo "github.com/piresc/campusride/services/transaction/repository"
	txnuc "github.com/piresc/campusride/services/transaction/usecase"
	tripmocks "github.com/piresc/campusride/services/trip/mocks"
	triprepo "github.com/piresc/campusride/services/trip/repository"
	tripuc "github.com/piresc/campusride/services/trip/usecase"
	userrepo "github.com/piresc/campusride/services/users/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRideFlow(t *testing.T) {
	db := dbtest.Firestore(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{
		Fare: models.FareConfig{Min: 100},
		Access: models.AccessConfig{
			RouteWriteRoles: []models.Role{models.RoleAdmin},
			BusWriteRoles:   []models.Role{models.RoleDriver, models.RoleAdmin},
			TripCreateRoles: []models.Role{models.RoleDriver},
		},
		Trip:     models.TripConfig{EnforceCapacity: true, DefaultPageSize: 20, MaxPageSize: 100},
		Paystack: models.PaystackConfig{Subunit: 100},
	}

	users := userrepo.NewUserRepository(cfg, db, nil)
	routes := routerepo.NewRouteRepository(db)
	buses := busrepo.NewBusRepository(db)
	trips := triprepo.NewTripRepository(db)
	txns := txnrepo.NewTransactionRepository(db)

	tripGW := tripmocks.NewMockTripGW(ctrl)
	tripGW.EXPECT().PublishTripCreated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tripGW.EXPECT().PublishTripJoined(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tripGW.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	txnGW := mocks.NewMockTransactionGW(ctrl)
	txnGW.EXPECT().PublishTransactionRecorded(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	routeUC, err := routeuc.NewRouteUC(cfg, routes)
	require.NoError(t, err)
	busUC, err := busuc.NewBusUC(cfg, buses)
	require.NoError(t, err)
	tripUC, err := tripuc.NewTripUC(cfg, trips, routes, buses, users, tripGW)
	require.NoError(t, err)
	transactionUC, err := txnuc.NewTransactionUC(cfg, txns, mocks.NewMockPaymentGW(ctrl), txnGW, tripUC, tripGW, users)
	require.NoError(t, err)

	admin := &models.Session{UserID: "admin-1", Role: models.RoleAdmin}
	driver := &models.Session{UserID: "driver-1", Role: models.RoleDriver}
	student := &models.Session{UserID: "student-1", Role: models.RoleStudent}
	for _, u := range []models.User{
		{ID: "admin-1", Email: "admin@campus.edu", Name: "Admin", Role: models.RoleAdmin},
		{ID: "driver-1", Email: "driver@campus.edu", Name: "Dan", Role: models.RoleDriver},
		{ID: "student-1", Email: "ada@campus.edu", Name: "Ada", Role: models.RoleStudent},
	} {
		_, err := users.CreateUser(ctx, u)
		require.NoError(t, err)
	}

	empty, err := transactionUC.ListTransactions(ctx, admin, models.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, empty.Data)
	assert.Equal(t, int64(0), empty.Pagination.Total)

	bus, err := busUC.CreateBus(ctx, driver, models.CreateBusRequest{Seats: 14})
	require.NoError(t, err)
	destination, err := routeUC.CreateRoute(ctx, admin, models.CreateRouteRequest{Route: "Campus–Mall", Cost: 500})
	require.NoError(t, err)
	created, err := tripUC.CreateTrip(ctx, driver, models.CreateTripRequest{DestinationID: destination.ID, BusID: bus.ID})
	require.NoError(t, err)

	_, err = tripUC.JoinTrip(ctx, student, models.JoinTripRequest{ID: created.ID})
	require.NoError(t, err)

	found, err := tripUC.GetTrip(ctx, student, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Occupants, 1)
	assert.Equal(t, "student-1", found.Occupants[0].ID)
	assert.Equal(t, "Campus–Mall", found.Destination.Route)
	assert.Equal(t, 14, found.Bus.Seats)

	_, err = transactionUC.CreateTransaction(ctx, admin, models.CreateTransactionRequest{
		DriverID: "driver-1", StudentID: "student-1", TripID: created.ID, Amount: 500,
	})
	require.NoError(t, err)

	mine, err := transactionUC.ListTransactions(ctx, student, models.TransactionFilter{StudentID: "student-1"})
	require.NoError(t, err)
	require.Len(t, mine.Data, 1)
	assert.Equal(t, int64(500), mine.Data[0].Amount)
	assert.Equal(t, "Ada", mine.Data[0].Student.Name)
	assert.Equal(t, created.ID, mine.Data[0].Trip.ID)
}
