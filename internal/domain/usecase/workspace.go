package usecase

import (
	"context"

	"github.com/razelos/appsmith/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindWorkspaceByIdRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID, capability *models.Capability) (*models.Workspace, error)
}

type FindDefaultTenantIdRepository interface {
	Find(ctx context.Context) (primitive.ObjectID, error)
}
