package usecases

import (
	"testing"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ids(n int) []primitive.ObjectID {
	out := make([]primitive.ObjectID, n)
	for i := range out {
		out[i] = primitive.NewObjectID()
	}
	return out
}

func TestIsLastAdminRoleEntity(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		users  int
		groups int
		want   bool
	}{
		{"admin without assignees", "Administrator - acme", 0, 0, false},
		{"admin with one user", "Administrator - acme", 1, 0, true},
		{"admin with one group", "Administrator - acme", 0, 1, true},
		{"admin with a user and a group", "Administrator - acme", 1, 1, false},
		{"admin with two users", "Administrator - acme", 2, 0, false},
		{"admin with two groups", "Administrator - acme", 0, 2, false},
		{"developer with one user", "Developer - acme", 1, 0, false},
		{"app viewer with one group", "App Viewer - acme", 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := &models.PermissionGroup{
				Name:               tt.role,
				AssignedToUserIds:  ids(tt.users),
				AssignedToGroupIds: ids(tt.groups),
			}
			assert.Equal(t, tt.want, IsLastAdminRoleEntity(role))
		})
	}
}

func TestIsLastAdminRoleEntityNil(t *testing.T) {
	assert.False(t, IsLastAdminRoleEntity(nil))
}
