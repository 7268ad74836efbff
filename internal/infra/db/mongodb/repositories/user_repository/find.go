package user_repository

import (
	"context"
	"errors"
	"strings"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func findOneUser(ctx context.Context, db *mongo.Database, filter bson.M) (*models.User, error) {
	collection := db.Collection(helpers.UserCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type FindUserByIdRepository struct {
	Db *mongo.Database
}

func NewFindUserByIdRepository(db *mongo.Database) *FindUserByIdRepository {
	return &FindUserByIdRepository{
		Db: db,
	}
}

func (r *FindUserByIdRepository) Find(ctx context.Context, userId primitive.ObjectID) (*models.User, error) {
	return findOneUser(ctx, r.Db, bson.M{"_id": userId})
}

type FindUserByEmailAndTenantRepository struct {
	Db *mongo.Database
}

func NewFindUserByEmailAndTenantRepository(db *mongo.Database) *FindUserByEmailAndTenantRepository {
	return &FindUserByEmailAndTenantRepository{
		Db: db,
	}
}

// Emails are stored lower-cased.
func (r *FindUserByEmailAndTenantRepository) Find(ctx context.Context, email string, tenantId primitive.ObjectID) (*models.User, error) {
	return findOneUser(ctx, r.Db, bson.M{
		"email":    strings.ToLower(strings.TrimSpace(email)),
		"tenantId": tenantId,
	})
}

type FindUsersByIdsRepository struct {
	Db *mongo.Database
}

func NewFindUsersByIdsRepository(db *mongo.Database) *FindUsersByIdsRepository {
	return &FindUsersByIdsRepository{
		Db: db,
	}
}

func (r *FindUsersByIdsRepository) Find(ctx context.Context, userIds []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	users := make(map[primitive.ObjectID]models.User, len(userIds))
	if len(userIds) == 0 {
		return users, nil
	}

	collection := r.Db.Collection(helpers.UserCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": userIds}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users[user.Id] = user
	}

	return users, cursor.Err()
}
