package permission_group_repository

import (
	"context"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func findPermissionGroups(ctx context.Context, db *mongo.Database, filter bson.M) ([]models.PermissionGroup, error) {
	collection := db.Collection(helpers.PermissionGroupCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	// Ordered by id so "the first binding" is stable across calls
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	permissionGroups := []models.PermissionGroup{}
	if err := cursor.All(ctx, &permissionGroups); err != nil {
		return nil, err
	}

	return permissionGroups, nil
}

func workspaceFilter(workspaceId primitive.ObjectID) bson.M {
	return bson.M{
		"defaultDomainId":   workspaceId,
		"defaultDomainType": models.WorkspaceEntityType,
	}
}

type FindPermissionGroupsByWorkspaceRepository struct {
	Db *mongo.Database
}

func NewFindPermissionGroupsByWorkspaceRepository(db *mongo.Database) *FindPermissionGroupsByWorkspaceRepository {
	return &FindPermissionGroupsByWorkspaceRepository{
		Db: db,
	}
}

func (r *FindPermissionGroupsByWorkspaceRepository) Find(ctx context.Context, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	filter := helpers.WithPermission(workspaceFilter(workspaceId), capability)
	return findPermissionGroups(ctx, r.Db, filter)
}

type FindPermissionGroupsAssignedToGroupRepository struct {
	Db *mongo.Database
}

func NewFindPermissionGroupsAssignedToGroupRepository(db *mongo.Database) *FindPermissionGroupsAssignedToGroupRepository {
	return &FindPermissionGroupsAssignedToGroupRepository{
		Db: db,
	}
}

func (r *FindPermissionGroupsAssignedToGroupRepository) Find(ctx context.Context, userGroupId primitive.ObjectID, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	filter := workspaceFilter(workspaceId)
	filter["assignedToGroupIds"] = userGroupId
	return findPermissionGroups(ctx, r.Db, helpers.WithPermission(filter, capability))
}

type FindPermissionGroupsAssignedToUserRepository struct {
	Db *mongo.Database
}

func NewFindPermissionGroupsAssignedToUserRepository(db *mongo.Database) *FindPermissionGroupsAssignedToUserRepository {
	return &FindPermissionGroupsAssignedToUserRepository{
		Db: db,
	}
}

func (r *FindPermissionGroupsAssignedToUserRepository) Find(ctx context.Context, userId primitive.ObjectID, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	filter := workspaceFilter(workspaceId)
	filter["assignedToUserIds"] = userId
	return findPermissionGroups(ctx, r.Db, helpers.WithPermission(filter, capability))
}
