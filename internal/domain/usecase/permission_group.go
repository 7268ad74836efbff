package usecase

import (
	"context"

	"github.com/razelos/appsmith/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindPermissionGroupByIdRepository interface {
	Find(ctx context.Context, permissionGroupId primitive.ObjectID, capability *models.Capability) (*models.PermissionGroup, error)
}

type FindPermissionGroupsByWorkspaceRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error)
}

type FindPermissionGroupsAssignedToGroupRepository interface {
	Find(ctx context.Context, userGroupId primitive.ObjectID, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error)
}

type FindPermissionGroupsAssignedToUserRepository interface {
	Find(ctx context.Context, userId primitive.ObjectID, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error)
}

// FindPermissionGroupIdsForPrincipalsRepository returns the ids of every
// permission group a user holds directly or through one of its groups.
type FindPermissionGroupIdsForPrincipalsRepository interface {
	Find(ctx context.Context, userId primitive.ObjectID, userGroupIds []primitive.ObjectID) ([]primitive.ObjectID, error)
}

// Assignment repositories have set semantics: assigning a present member or
// unassigning an absent one leaves the document unchanged.
type AssignUserGroupRepository interface {
	Assign(ctx context.Context, permissionGroupId primitive.ObjectID, userGroupId primitive.ObjectID) (*models.PermissionGroup, error)
}

type UnassignUserGroupRepository interface {
	Unassign(ctx context.Context, permissionGroupId primitive.ObjectID, userGroupId primitive.ObjectID) (*models.PermissionGroup, error)
}

type AssignUserRepository interface {
	Assign(ctx context.Context, permissionGroupId primitive.ObjectID, userId primitive.ObjectID) (*models.PermissionGroup, error)
}

type UnassignUserRepository interface {
	Unassign(ctx context.Context, permissionGroupId primitive.ObjectID, userId primitive.ObjectID) (*models.PermissionGroup, error)
}
