package tenant_repository

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

const DefaultTenantSlug = "default"

var ErrDefaultTenantMissing = errors.New("default tenant is not configured")

type FindDefaultTenantIdRepository struct {
	Db *mongo.Database
}

func NewFindDefaultTenantIdRepository(db *mongo.Database) *FindDefaultTenantIdRepository {
	return &FindDefaultTenantIdRepository{
		Db: db,
	}
}

func (r *FindDefaultTenantIdRepository) Find(ctx context.Context) (primitive.ObjectID, error) {
	collection := r.Db.Collection(helpers.TenantCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"_id": 1, "slug": 1})

	var tenant models.Tenant
	err := collection.FindOne(ctx, bson.M{"slug": DefaultTenantSlug}, opts).Decode(&tenant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, ErrDefaultTenantMissing
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	return tenant.Id, nil
}
