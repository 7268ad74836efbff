package permission_group_repository

import (
	"context"

	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindPermissionGroupIdsForPrincipalsRepository struct {
	Db *mongo.Database
}

func NewFindPermissionGroupIdsForPrincipalsRepository(db *mongo.Database) *FindPermissionGroupIdsForPrincipalsRepository {
	return &FindPermissionGroupIdsForPrincipalsRepository{
		Db: db,
	}
}

func (r *FindPermissionGroupIdsForPrincipalsRepository) Find(ctx context.Context, userId primitive.ObjectID, userGroupIds []primitive.ObjectID) ([]primitive.ObjectID, error) {
	collection := r.Db.Collection(helpers.PermissionGroupCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	or := bson.A{bson.M{"assignedToUserIds": userId}}
	if len(userGroupIds) > 0 {
		or = append(or, bson.M{"assignedToGroupIds": bson.M{"$in": userGroupIds}})
	}

	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := collection.Find(ctx, bson.M{"$or": or}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Id primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Id)
	}

	return ids, nil
}
