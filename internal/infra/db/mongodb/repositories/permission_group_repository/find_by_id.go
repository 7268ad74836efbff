package permission_group_repository

import (
	"context"
	"errors"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindPermissionGroupByIdRepository struct {
	Db *mongo.Database
}

func NewFindPermissionGroupByIdRepository(db *mongo.Database) *FindPermissionGroupByIdRepository {
	return &FindPermissionGroupByIdRepository{
		Db: db,
	}
}

func (r *FindPermissionGroupByIdRepository) Find(ctx context.Context, permissionGroupId primitive.ObjectID, capability *models.Capability) (*models.PermissionGroup, error) {
	collection := r.Db.Collection(helpers.PermissionGroupCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	filter := helpers.WithPermission(bson.M{"_id": permissionGroupId}, capability)

	var permissionGroup models.PermissionGroup
	err := collection.FindOne(ctx, filter).Decode(&permissionGroup)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &permissionGroup, nil
}
