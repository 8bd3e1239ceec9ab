package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
)

// UserRepo implements users.UserRepo on Firestore with a Redis profile cache
type UserRepo struct {
	db    *database.FirestoreClient
	cache *profileCache
}

// NewUserRepository creates the repository. A nil redisClient disables caching.
func NewUserRepository(cfg *models.Config, db *database.FirestoreClient, redisClient *database.RedisClient) *UserRepo {
	return &UserRepo{
		db:    db,
		cache: newProfileCache(redisClient, cfg.Cache.ProfileTTL),
	}
}

func (r *UserRepo) col() *firestore.CollectionRef {
	return r.db.Client.Collection(constants.CollectionUsers)
}

// CreateUser stores the profile under the identity provider's uid
func (r *UserRepo) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, apperror.Validation("user id is required")
	}
	if _, err := r.col().Doc(user.ID).Create(ctx, r.db.UserDocFrom(user)); err != nil {
		if database.IsAlreadyExists(err) {
			return nil, apperror.Conflict("user already exists")
		}
		return nil, apperror.Persistence("create user", err)
	}
	return r.load(ctx, user.ID)
}

func (r *UserRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, apperror.NotFound("user")
	}
	if user, ok := r.cache.get(ctx, id); ok {
		return user, nil
	}
	return r.load(ctx, id)
}

// load reads the document and refreshes the cache entry
func (r *UserRepo) load(ctx context.Context, id string) (*models.User, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperror.NotFound("user")
		}
		return nil, apperror.Persistence("get user", err)
	}
	user, err := database.DecodeUser(snap)
	if err != nil {
		return nil, apperror.Persistence("get user", err)
	}
	r.cache.put(ctx, user)
	return &user, nil
}

// GetUsersByIDs serves what it can from the cache and fetches the rest in one batch.
// Missing users are absent from the result.
func (r *UserRepo) GetUsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	ids = uniqueIDs(ids)
	found, missing := r.cache.getMany(ctx, ids)
	if len(missing) == 0 {
		return found, nil
	}

	snaps, err := r.db.GetAll(ctx, constants.CollectionUsers, missing)
	if err != nil {
		return nil, apperror.Persistence("get users", err)
	}
	loaded := make([]models.User, 0, len(snaps))
	for id, snap := range snaps {
		user, err := database.DecodeUser(snap)
		if err != nil {
			return nil, apperror.Persistence("get users", err)
		}
		found[id] = user
		loaded = append(loaded, user)
	}
	r.cache.put(ctx, loaded...)
	return found, nil
}

func (r *UserRepo) UpdateUserName(ctx context.Context, id, name string) (*models.User, error) {
	if err := r.update(ctx, id, "update user", []firestore.Update{
		{Path: constants.FieldName, Value: name},
	}); err != nil {
		return nil, err
	}
	return r.load(ctx, id)
}

func (r *UserRepo) SetDeviceToken(ctx context.Context, id, token string) error {
	return r.update(ctx, id, "register device token", []firestore.Update{
		{Path: constants.FieldFCMToken, Value: token},
	})
}

func (r *UserRepo) update(ctx context.Context, id, op string, updates []firestore.Update) error {
	if id == "" {
		return apperror.NotFound("user")
	}
	updates = append(updates, firestore.Update{Path: constants.FieldUpdatedAt, Value: firestore.ServerTimestamp})
	if _, err := r.col().Doc(id).Update(ctx, updates); err != nil {
		if database.IsNotFound(err) {
			return apperror.NotFound("user")
		}
		return apperror.Persistence(op, err)
	}
	r.cache.invalidate(ctx, id)
	return nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return apperror.NotFound("user")
	}
	if _, err := r.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if database.IsNotFound(err) {
			return apperror.NotFound("user")
		}
		return apperror.Persistence("delete user", err)
	}
	r.cache.invalidate(ctx, id)
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
