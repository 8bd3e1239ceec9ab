package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/database/dbtest"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*miniredis.Miniredis, *UserRepo) {
	db := dbtest.Firestore(t)
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &models.Config{Cache: models.CacheConfig{ProfileTTL: time.Minute}}
	rc := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return mr, NewUserRepository(cfg, db, rc)
}

func TestUserRepo_CreateGetCachesProfile(t *testing.T) {
	mr, repo := setupRepo(t)
	ctx := context.Background()
	id := uuid.NewString()

	created, err := repo.CreateUser(ctx, models.User{ID: id, Email: "s@campus.edu", Name: "S", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.True(t, mr.Exists("user:profile:"+id))

	got, err := repo.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "s@campus.edu", got.Email)
}

func TestUserRepo_UpdateInvalidatesCache(t *testing.T) {
	mr, repo := setupRepo(t)
	ctx := context.Background()
	id := uuid.NewString()
	_, err := repo.CreateUser(ctx, models.User{ID: id, Name: "Old", Role: models.RoleDriver})
	require.NoError(t, err)

	require.NoError(t, repo.SetDeviceToken(ctx, id, "token-1"))
	assert.False(t, mr.Exists("user:profile:"+id))

	updated, err := repo.UpdateUserName(ctx, id, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "token-1", updated.FCMToken)
}

func TestUserRepo_GetUsersByIDs_MixesCacheAndStore(t *testing.T) {
	mr, repo := setupRepo(t)
	ctx := context.Background()
	a, b := uuid.NewString(), uuid.NewString()
	for _, id := range []string{a, b} {
		_, err := repo.CreateUser(ctx, models.User{ID: id, Role: models.RoleStudent})
		require.NoError(t, err)
	}
	mr.Del("user:profile:" + b)

	got, err := repo.GetUsersByIDs(ctx, []string{a, b, "missing", a})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, mr.Exists("user:profile:"+b))
}

func TestUserRepo_Missing(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.GetUser(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repo.SetDeviceToken(ctx, "missing", "t")))
	assert.True(t, apperror.IsNotFound(repo.DeleteUser(ctx, "missing")))
}
