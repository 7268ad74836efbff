package usecase

import (
	"context"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdatePermissionGroupInput struct {
	Username             string
	UserGroupId          *primitive.ObjectID
	NewPermissionGroupId *primitive.ObjectID
	Origin               string
}

type UpdatePermissionGroupForMember interface {
	Update(ctx context.Context, workspaceId primitive.ObjectID, input *UpdatePermissionGroupInput, session *models.SessionUser) (*models.MemberInfo, error)
}

// RoleReassignmentStrategy moves one kind of principal (user or user group)
// from its current workspace role to a new one.
type RoleReassignmentStrategy interface {
	Reassign(ctx context.Context, workspaceId primitive.ObjectID, input *UpdatePermissionGroupInput, session *models.SessionUser) (*models.MemberInfo, error)
}

type GetWorkspaceMembers interface {
	Get(ctx context.Context, workspaceId primitive.ObjectID, session *models.SessionUser) ([]models.MemberInfo, error)
}

type GetWorkspaceRoles interface {
	Get(ctx context.Context, workspaceId primitive.ObjectID, session *models.SessionUser) ([]models.PermissionGroupInfo, error)
}

type ExportWorkspaceMembers interface {
	Export(ctx context.Context, workspaceId primitive.ObjectID, session *models.SessionUser) (*excelize.File, error)
}

type LoadSessionUser interface {
	Load(ctx context.Context, userId primitive.ObjectID) (*models.SessionUser, error)
}
