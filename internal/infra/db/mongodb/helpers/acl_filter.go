package helpers

import (
	"github.com/razelos/appsmith/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// WithPermission restricts filter to documents whose policies grant
// capability.Permission to one of the caller's permission groups. A nil
// capability leaves the filter unchecked.
func WithPermission(filter bson.M, capability *models.Capability) bson.M {
	if capability == nil {
		return filter
	}

	groups := capability.PermissionGroupIds
	if groups == nil {
		groups = []string{}
	}

	filter["policies"] = bson.M{
		"$elemMatch": bson.M{
			"permission":       capability.Permission,
			"permissionGroups": bson.M{"$in": groups},
		},
	}

	return filter
}
