package usecases

import (
	"context"
	"fmt"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DbGetWorkspaceRoles struct {
	FindWorkspaceById               usecase.FindWorkspaceByIdRepository
	FindPermissionGroupsByWorkspace usecase.FindPermissionGroupsByWorkspaceRepository
}

func NewDbGetWorkspaceRoles(findWorkspaceById usecase.FindWorkspaceByIdRepository, findPermissionGroupsByWorkspace usecase.FindPermissionGroupsByWorkspaceRepository) *DbGetWorkspaceRoles {
	return &DbGetWorkspaceRoles{
		FindWorkspaceById:               findWorkspaceById,
		FindPermissionGroupsByWorkspace: findPermissionGroupsByWorkspace,
	}
}

func (u *DbGetWorkspaceRoles) Get(ctx context.Context, workspaceId primitive.ObjectID, session *models.SessionUser) ([]models.PermissionGroupInfo, error) {
	workspace, err := u.FindWorkspaceById.Find(ctx, workspaceId, session.Can(models.ReadWorkspaces))
	if err != nil {
		return nil, fmt.Errorf("find workspace %s: %w", workspaceId.Hex(), err)
	}
	if workspace == nil {
		return nil, apperrors.NewResourceNotFound("workspace", workspaceId.Hex())
	}

	roles, err := u.FindPermissionGroupsByWorkspace.Find(ctx, workspace.Id, session.Can(models.ReadPermissionGroups))
	if err != nil {
		return nil, fmt.Errorf("find roles of workspace %s: %w", workspace.Id.Hex(), err)
	}

	infos := make([]models.PermissionGroupInfo, 0, len(roles))
	for i := range roles {
		infos = append(infos, roles[i].Info())
	}
	helpers.SortRoles(infos)

	return infos, nil
}
