package permission_group_repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	assignedToUsersField  = "assignedToUserIds"
	assignedToGroupsField = "assignedToGroupIds"
)

// updateAssignees applies a $addToSet or $pull on one assignee set and
// returns the document after the update. Both operators are no-ops when the
// member is already present/absent, which makes retries safe.
func updateAssignees(ctx context.Context, db *mongo.Database, permissionGroupId primitive.ObjectID, operator string, field string, memberId primitive.ObjectID) (*models.PermissionGroup, error) {
	collection := db.Collection(helpers.PermissionGroupCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	update := bson.M{operator: bson.M{field: memberId}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var permissionGroup models.PermissionGroup
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": permissionGroupId}, update, opts).Decode(&permissionGroup)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("permission group %s not found", permissionGroupId.Hex())
	}
	if err != nil {
		return nil, err
	}

	return &permissionGroup, nil
}

type AssignUserGroupRepository struct {
	Db *mongo.Database
}

func NewAssignUserGroupRepository(db *mongo.Database) *AssignUserGroupRepository {
	return &AssignUserGroupRepository{Db: db}
}

func (r *AssignUserGroupRepository) Assign(ctx context.Context, permissionGroupId primitive.ObjectID, userGroupId primitive.ObjectID) (*models.PermissionGroup, error) {
	return updateAssignees(ctx, r.Db, permissionGroupId, "$addToSet", assignedToGroupsField, userGroupId)
}

type UnassignUserGroupRepository struct {
	Db *mongo.Database
}

func NewUnassignUserGroupRepository(db *mongo.Database) *UnassignUserGroupRepository {
	return &UnassignUserGroupRepository{Db: db}
}

func (r *UnassignUserGroupRepository) Unassign(ctx context.Context, permissionGroupId primitive.ObjectID, userGroupId primitive.ObjectID) (*models.PermissionGroup, error) {
	return updateAssignees(ctx, r.Db, permissionGroupId, "$pull", assignedToGroupsField, userGroupId)
}

type AssignUserRepository struct {
	Db *mongo.Database
}

func NewAssignUserRepository(db *mongo.Database) *AssignUserRepository {
	return &AssignUserRepository{Db: db}
}

func (r *AssignUserRepository) Assign(ctx context.Context, permissionGroupId primitive.ObjectID, userId primitive.ObjectID) (*models.PermissionGroup, error) {
	return updateAssignees(ctx, r.Db, permissionGroupId, "$addToSet", assignedToUsersField, userId)
}

type UnassignUserRepository struct {
	Db *mongo.Database
}

func NewUnassignUserRepository(db *mongo.Database) *UnassignUserRepository {
	return &UnassignUserRepository{Db: db}
}

func (r *UnassignUserRepository) Unassign(ctx context.Context, permissionGroupId primitive.ObjectID, userId primitive.ObjectID) (*models.PermissionGroup, error) {
	return updateAssignees(ctx, r.Db, permissionGroupId, "$pull", assignedToUsersField, userId)
}
