package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
)

// cachedProfile keeps the device token that models.User hides from JSON
type cachedProfile struct {
	models.User
	FCMToken string `json:"fcmToken,omitempty"`
}

// profileCache is a read-through cache of user documents in Redis.
// Failures are logged and treated as misses; Firestore stays the source of truth.
type profileCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

func newProfileCache(redisClient *database.RedisClient, ttl time.Duration) *profileCache {
	if redisClient == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &profileCache{redis: redisClient, ttl: ttl}
}

func profileKey(id string) string {
	return fmt.Sprintf(constants.KeyUserProfile, id)
}

func (c *profileCache) get(ctx context.Context, id string) (*models.User, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, profileKey(id))
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnCtx(ctx, "Profile cache read failed", logger.String("user_id", id), logger.Err(err))
		}
		return nil, false
	}
	user, ok := decodeProfile(raw)
	return user, ok
}

// getMany returns the cached profiles among ids and the ids that missed
func (c *profileCache) getMany(ctx context.Context, ids []string) (map[string]models.User, []string) {
	found := make(map[string]models.User, len(ids))
	if c == nil || len(ids) == 0 {
		return found, ids
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKey(id)
	}
	values, err := c.redis.MGet(ctx, keys...)
	if err != nil {
		logger.WarnCtx(ctx, "Profile cache batch read failed", logger.Int("keys", len(keys)), logger.Err(err))
		return found, ids
	}

	var missing []string
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		user, ok := decodeProfile(raw)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		found[ids[i]] = *user
	}
	return found, missing
}

func (c *profileCache) put(ctx context.Context, users ...models.User) {
	if c == nil {
		return
	}
	for _, u := range users {
		raw, err := json.Marshal(cachedProfile{User: u, FCMToken: u.FCMToken})
		if err != nil {
			continue
		}
		if err := c.redis.Set(ctx, profileKey(u.ID), raw, c.ttl); err != nil {
			logger.WarnCtx(ctx, "Profile cache write failed", logger.String("user_id", u.ID), logger.Err(err))
		}
	}
}

func (c *profileCache) invalidate(ctx context.Context, id string) {
	if c == nil {
		return
	}
	if err := c.redis.Delete(ctx, profileKey(id)); err != nil {
		logger.WarnCtx(ctx, "Profile cache invalidation failed", logger.String("user_id", id), logger.Err(err))
	}
}

func decodeProfile(raw string) (*models.User, bool) {
	var p cachedProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false
	}
	user := p.User
	user.FCMToken = p.FCMToken
	return &user, true
}
