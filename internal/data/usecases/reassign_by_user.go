package usecases

import (
	"context"
	"fmt"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReassignByUser struct {
	Reassigner *RoleReassigner

	FindUserByEmailAndTenant usecase.FindUserByEmailAndTenantRepository
	FindAssignedToUser       usecase.FindPermissionGroupsAssignedToUserRepository
	UnassignUser             usecase.UnassignUserRepository
	AssignUser               usecase.AssignUserRepository
}

func (s *ReassignByUser) Reassign(ctx context.Context, workspaceId primitive.ObjectID, input *usecase.UpdatePermissionGroupInput, session *models.SessionUser) (*models.MemberInfo, error) {
	workspace, tenantId, err := s.Reassigner.resolveScope(ctx, workspaceId, session)
	if err != nil {
		return nil, err
	}

	user, err := s.FindUserByEmailAndTenant.Find(ctx, input.Username, tenantId)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", input.Username, err)
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFound("user", input.Username)
	}

	binding := &userBinding{strategy: s, user: user}

	return s.Reassigner.reassign(ctx, workspace, binding, input.NewPermissionGroupId, session, input.Origin)
}

type userBinding struct {
	strategy *ReassignByUser
	user     *models.User
}

func (b *userBinding) currentRoles(ctx context.Context, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	return b.strategy.FindAssignedToUser.Find(ctx, b.user.Id, workspaceId, capability)
}

func (b *userBinding) unassign(ctx context.Context, permissionGroupId primitive.ObjectID) error {
	_, err := b.strategy.UnassignUser.Unassign(ctx, permissionGroupId, b.user.Id)
	return err
}

func (b *userBinding) assign(ctx context.Context, permissionGroupId primitive.ObjectID) error {
	_, err := b.strategy.AssignUser.Assign(ctx, permissionGroupId, b.user.Id)
	return err
}

func (b *userBinding) affectedUserIds() []primitive.ObjectID {
	return []primitive.ObjectID{b.user.Id}
}

func (b *userBinding) describe(roles []models.PermissionGroupInfo) *models.MemberInfo {
	id := b.user.Id
	return &models.MemberInfo{
		UserId:   &id,
		Username: b.user.Email,
		Name:     b.user.Name,
		Roles:    roles,
	}
}

func (b *userBinding) subject(event *models.MembershipChangedEvent) {
	id := b.user.Id
	event.UserId = &id
}

func NewReassignByUser(
	reassigner *RoleReassigner,
	findUserByEmailAndTenant usecase.FindUserByEmailAndTenantRepository,
	findAssignedToUser usecase.FindPermissionGroupsAssignedToUserRepository,
	unassignUser usecase.UnassignUserRepository,
	assignUser usecase.AssignUserRepository,
) *ReassignByUser {
	return &ReassignByUser{
		Reassigner:               reassigner,
		FindUserByEmailAndTenant: findUserByEmailAndTenant,
		FindAssignedToUser:       findAssignedToUser,
		UnassignUser:             unassignUser,
		AssignUser:               assignUser,
	}
}
