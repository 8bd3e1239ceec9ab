package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/database/dbtest"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusRepo_CreateUpdateDelete(t *testing.T) {
	repo := NewBusRepository(dbtest.Firestore(t))
	ctx := context.Background()
	id := uuid.NewString()

	created, err := repo.CreateBus(ctx, models.Bus{ID: id, Seats: 14, DriverID: "driver-1"})
	require.NoError(t, err)
	assert.Equal(t, "driver-1", created.DriverID)
	assert.Equal(t, 14, created.Seats)

	updated, err := repo.UpdateBus(ctx, models.UpdateBusRequest{ID: id, Seats: 18})
	require.NoError(t, err)
	assert.Equal(t, 18, updated.Seats)
	assert.Equal(t, "driver-1", updated.DriverID)

	require.NoError(t, repo.DeleteBus(ctx, id))
	_, err = repo.GetBus(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestBusRepo_ListBuses_DriverFilter(t *testing.T) {
	repo := NewBusRepository(dbtest.Firestore(t))
	ctx := context.Background()

	for _, driver := range []string{"d-1", "d-1", "d-2"} {
		_, err := repo.CreateBus(ctx, models.Bus{ID: uuid.NewString(), Seats: 10, DriverID: driver})
		require.NoError(t, err)
	}

	page := models.PageRequest{Page: 1, Limit: 10}
	mine, total, err := repo.ListBuses(ctx, models.BusFilter{DriverID: "d-1", PageRequest: page})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, b := range mine {
		assert.Equal(t, "d-1", b.DriverID)
	}

	all, total, err := repo.ListBuses(ctx, models.BusFilter{PageRequest: page})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}
