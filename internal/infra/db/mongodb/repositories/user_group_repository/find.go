package user_group_repository

import (
	"context"
	"errors"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindUserGroupByIdAndTenantRepository struct {
	Db *mongo.Database
}

func NewFindUserGroupByIdAndTenantRepository(db *mongo.Database) *FindUserGroupByIdAndTenantRepository {
	return &FindUserGroupByIdAndTenantRepository{
		Db: db,
	}
}

func (r *FindUserGroupByIdAndTenantRepository) Find(ctx context.Context, userGroupId primitive.ObjectID, tenantId primitive.ObjectID) (*models.UserGroup, error) {
	collection := r.Db.Collection(helpers.UserGroupCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var userGroup models.UserGroup
	err := collection.FindOne(ctx, bson.M{"_id": userGroupId, "tenantId": tenantId}).Decode(&userGroup)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &userGroup, nil
}

type FindUserGroupsByIdsRepository struct {
	Db *mongo.Database
}

func NewFindUserGroupsByIdsRepository(db *mongo.Database) *FindUserGroupsByIdsRepository {
	return &FindUserGroupsByIdsRepository{
		Db: db,
	}
}

func (r *FindUserGroupsByIdsRepository) Find(ctx context.Context, userGroupIds []primitive.ObjectID) (map[primitive.ObjectID]models.UserGroup, error) {
	userGroups := make(map[primitive.ObjectID]models.UserGroup, len(userGroupIds))
	if len(userGroupIds) == 0 {
		return userGroups, nil
	}

	collection := r.Db.Collection(helpers.UserGroupCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": userGroupIds}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var userGroup models.UserGroup
		if err := cursor.Decode(&userGroup); err != nil {
			return nil, err
		}
		userGroups[userGroup.Id] = userGroup
	}

	return userGroups, cursor.Err()
}

type FindUserGroupIdsByMemberRepository struct {
	Db *mongo.Database
}

func NewFindUserGroupIdsByMemberRepository(db *mongo.Database) *FindUserGroupIdsByMemberRepository {
	return &FindUserGroupIdsByMemberRepository{
		Db: db,
	}
}

func (r *FindUserGroupIdsByMemberRepository) Find(ctx context.Context, userId primitive.ObjectID) ([]primitive.ObjectID, error) {
	collection := r.Db.Collection(helpers.UserGroupCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := collection.Find(ctx, bson.M{"users": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := []primitive.ObjectID{}
	for cursor.Next(ctx) {
		var doc struct {
			Id primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.Id)
	}

	return ids, cursor.Err()
}
