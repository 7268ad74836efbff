package redis_repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const permissionGroupsKeyPrefix = "permissionGroups:"

func PermissionGroupsKey(userId primitive.ObjectID) string {
	return permissionGroupsKeyPrefix + userId.Hex()
}

type PermissionGroupCacheRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPermissionGroupCacheRepository(client *redis.Client, ttl time.Duration) *PermissionGroupCacheRepository {
	return &PermissionGroupCacheRepository{
		Client: client,
		TTL:    ttl,
	}
}

func (r *PermissionGroupCacheRepository) Get(ctx context.Context, userId primitive.ObjectID) ([]string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	value, err := r.Client.Get(ctx, PermissionGroupsKey(userId)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get permission groups of %s: %w", userId.Hex(), err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return nil, false, fmt.Errorf("decode cached permission groups of %s: %w", userId.Hex(), err)
	}

	return ids, true, nil
}

func (r *PermissionGroupCacheRepository) Set(ctx context.Context, userId primitive.ObjectID, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	value, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Set(ctx, PermissionGroupsKey(userId), value, r.TTL).Err(); err != nil {
		return fmt.Errorf("cache permission groups of %s: %w", userId.Hex(), err)
	}

	return nil
}

func (r *PermissionGroupCacheRepository) Evict(ctx context.Context, userIds ...primitive.ObjectID) error {
	if len(userIds) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIds))
	for _, id := range userIds {
		keys = append(keys, PermissionGroupsKey(id))
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("evict permission groups: %w", err)
	}

	return nil
}
