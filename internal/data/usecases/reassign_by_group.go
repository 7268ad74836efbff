package usecases

import (
	"context"
	"fmt"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReassignByGroup struct {
	Reassigner *RoleReassigner

	FindUserGroupByIdAndTenant usecase.FindUserGroupByIdAndTenantRepository
	FindAssignedToGroup        usecase.FindPermissionGroupsAssignedToGroupRepository
	UnassignUserGroup          usecase.UnassignUserGroupRepository
	AssignUserGroup            usecase.AssignUserGroupRepository
}

func (s *ReassignByGroup) Reassign(ctx context.Context, workspaceId primitive.ObjectID, input *usecase.UpdatePermissionGroupInput, session *models.SessionUser) (*models.MemberInfo, error) {
	workspace, tenantId, err := s.Reassigner.resolveScope(ctx, workspaceId, session)
	if err != nil {
		return nil, err
	}

	userGroup, err := s.FindUserGroupByIdAndTenant.Find(ctx, *input.UserGroupId, tenantId)
	if err != nil {
		return nil, fmt.Errorf("find user group %s: %w", input.UserGroupId.Hex(), err)
	}
	if userGroup == nil {
		return nil, apperrors.NewResourceNotFound("user group", input.UserGroupId.Hex())
	}

	binding := &groupBinding{strategy: s, userGroup: userGroup}

	return s.Reassigner.reassign(ctx, workspace, binding, input.NewPermissionGroupId, session, input.Origin)
}

type groupBinding struct {
	strategy  *ReassignByGroup
	userGroup *models.UserGroup
}

func (b *groupBinding) currentRoles(ctx context.Context, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	return b.strategy.FindAssignedToGroup.Find(ctx, b.userGroup.Id, workspaceId, capability)
}

func (b *groupBinding) unassign(ctx context.Context, permissionGroupId primitive.ObjectID) error {
	_, err := b.strategy.UnassignUserGroup.Unassign(ctx, permissionGroupId, b.userGroup.Id)
	return err
}

func (b *groupBinding) assign(ctx context.Context, permissionGroupId primitive.ObjectID) error {
	_, err := b.strategy.AssignUserGroup.Assign(ctx, permissionGroupId, b.userGroup.Id)
	return err
}

func (b *groupBinding) affectedUserIds() []primitive.ObjectID {
	return b.userGroup.Users
}

func (b *groupBinding) describe(roles []models.PermissionGroupInfo) *models.MemberInfo {
	id := b.userGroup.Id
	return &models.MemberInfo{
		UserGroupId: &id,
		Username:    b.userGroup.Name,
		Name:        b.userGroup.Name,
		Roles:       roles,
	}
}

func (b *groupBinding) subject(event *models.MembershipChangedEvent) {
	id := b.userGroup.Id
	event.UserGroupId = &id
}

func NewReassignByGroup(
	reassigner *RoleReassigner,
	findUserGroupByIdAndTenant usecase.FindUserGroupByIdAndTenantRepository,
	findAssignedToGroup usecase.FindPermissionGroupsAssignedToGroupRepository,
	unassignUserGroup usecase.UnassignUserGroupRepository,
	assignUserGroup usecase.AssignUserGroupRepository,
) *ReassignByGroup {
	return &ReassignByGroup{
		Reassigner:                 reassigner,
		FindUserGroupByIdAndTenant: findUserGroupByIdAndTenant,
		FindAssignedToGroup:        findAssignedToGroup,
		UnassignUserGroup:          unassignUserGroup,
		AssignUserGroup:            assignUserGroup,
	}
}
