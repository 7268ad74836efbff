package workspace_repository

import (
	"context"
	"errors"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindWorkspaceByIdRepository struct {
	Db *mongo.Database
}

func NewFindWorkspaceByIdRepository(db *mongo.Database) *FindWorkspaceByIdRepository {
	return &FindWorkspaceByIdRepository{
		Db: db,
	}
}

// Find returns nil when the workspace does not exist or the capability does
// not grant access to it; callers cannot tell the two apart.
func (r *FindWorkspaceByIdRepository) Find(ctx context.Context, workspaceId primitive.ObjectID, capability *models.Capability) (*models.Workspace, error) {
	collection := r.Db.Collection(helpers.WorkspaceCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	filter := helpers.WithPermission(bson.M{"_id": workspaceId}, capability)

	var workspace models.Workspace
	err := collection.FindOne(ctx, filter).Decode(&workspace)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}
