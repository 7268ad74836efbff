package usecase

import (
	"context"

	"github.com/razelos/appsmith/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PermissionGroupCacheRepository caches the permission group ids of a user.
// Get reports found=false on a miss.
type PermissionGroupCacheRepository interface {
	Get(ctx context.Context, userId primitive.ObjectID) (ids []string, found bool, err error)
	Set(ctx context.Context, userId primitive.ObjectID, ids []string) error
	Evict(ctx context.Context, userIds ...primitive.ObjectID) error
}

type PublishMembershipEventRepository interface {
	Publish(ctx context.Context, event *models.MembershipChangedEvent) error
}
