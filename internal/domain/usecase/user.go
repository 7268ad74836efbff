package usecase

import (
	"context"

	"github.com/razelos/appsmith/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindUserByIdRepository interface {
	Find(ctx context.Context, userId primitive.ObjectID) (*models.User, error)
}

type FindUserByEmailAndTenantRepository interface {
	Find(ctx context.Context, email string, tenantId primitive.ObjectID) (*models.User, error)
}

type FindUsersByIdsRepository interface {
	Find(ctx context.Context, userIds []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
}

type FindUserGroupByIdAndTenantRepository interface {
	Find(ctx context.Context, userGroupId primitive.ObjectID, tenantId primitive.ObjectID) (*models.UserGroup, error)
}

type FindUserGroupsByIdsRepository interface {
	Find(ctx context.Context, userGroupIds []primitive.ObjectID) (map[primitive.ObjectID]models.UserGroup, error)
}

type FindUserGroupIdsByMemberRepository interface {
	Find(ctx context.Context, userId primitive.ObjectID) ([]primitive.ObjectID, error)
}
