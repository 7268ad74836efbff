package usecases

import (
	"context"
	"testing"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetWorkspaceRoles(t *testing.T) {
	s := newFakeStore()
	workspace := s.addWorkspace("acme")
	s.addRole(workspace, "App Viewer - acme")
	s.addRole(workspace, "Administrator - acme")
	s.addRole(workspace, "Developer - acme")
	s.addRole(s.addWorkspace("globex"), "Administrator - globex")

	roles, err := NewDbGetWorkspaceRoles(fakeWorkspaces{s}, fakeRolesByWorkspace{s}).Get(context.Background(), workspace.Id, &models.SessionUser{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Administrator - acme", "Developer - acme", "App Viewer - acme"}, roleNames(roles))
	for _, role := range roles {
		assert.Equal(t, models.WorkspaceEntityType, role.EntityType)
	}
}

func TestGetWorkspaceRoles_NoReadPermission(t *testing.T) {
	s := newFakeStore()
	workspace := s.addWorkspace("acme")
	s.addRole(workspace, "Administrator - acme")
	s.denied[models.ReadPermissionGroups] = true

	roles, err := NewDbGetWorkspaceRoles(fakeWorkspaces{s}, fakeRolesByWorkspace{s}).Get(context.Background(), workspace.Id, &models.SessionUser{})

	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestGetWorkspaceRoles_WorkspaceNotFound(t *testing.T) {
	s := newFakeStore()

	_, err := NewDbGetWorkspaceRoles(fakeWorkspaces{s}, fakeRolesByWorkspace{s}).Get(context.Background(), primitive.NewObjectID(), &models.SessionUser{})

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
