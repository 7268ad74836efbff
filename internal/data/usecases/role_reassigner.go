package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const changeMemberRoleAction = "Change permissionGroup of a member"

// memberBinding is the part of a reassignment that depends on the kind of
// principal being moved.
type memberBinding interface {
	currentRoles(ctx context.Context, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error)
	unassign(ctx context.Context, permissionGroupId primitive.ObjectID) error
	assign(ctx context.Context, permissionGroupId primitive.ObjectID) error
	affectedUserIds() []primitive.ObjectID
	describe(roles []models.PermissionGroupInfo) *models.MemberInfo
	subject(event *models.MembershipChangedEvent)
}

// RoleReassigner runs the unassign-then-assign protocol shared by every
// reassignment strategy.
type RoleReassigner struct {
	FindWorkspaceById       usecase.FindWorkspaceByIdRepository
	FindDefaultTenantId     usecase.FindDefaultTenantIdRepository
	FindPermissionGroupById usecase.FindPermissionGroupByIdRepository
	PermissionGroupCache    usecase.PermissionGroupCacheRepository
	PublishMembershipEvent  usecase.PublishMembershipEventRepository
	Metrics                 *metrics.Metrics
	Log                     *logrus.Logger
}

func (r *RoleReassigner) resolveScope(ctx context.Context, workspaceId primitive.ObjectID, session *models.SessionUser) (*models.Workspace, primitive.ObjectID, error) {
	workspace, err := r.FindWorkspaceById.Find(ctx, workspaceId, session.Can(models.ReadWorkspaces))
	if err != nil {
		return nil, primitive.NilObjectID, fmt.Errorf("find workspace %s: %w", workspaceId.Hex(), err)
	}
	if workspace == nil {
		return nil, primitive.NilObjectID, apperrors.NewResourceNotFound("workspace", workspaceId.Hex())
	}

	tenantId, err := r.FindDefaultTenantId.Find(ctx)
	if err != nil {
		return nil, primitive.NilObjectID, fmt.Errorf("find default tenant: %w", err)
	}

	return workspace, tenantId, nil
}

func (r *RoleReassigner) reassign(ctx context.Context, workspace *models.Workspace, binding memberBinding, newPermissionGroupId *primitive.ObjectID, session *models.SessionUser, origin string) (*models.MemberInfo, error) {
	current, err := binding.currentRoles(ctx, workspace.Id, session.Can(models.UnassignPermissionGroups))
	if err != nil {
		return nil, fmt.Errorf("find current roles: %w", err)
	}
	if len(current) == 0 {
		return nil, apperrors.NewActionNotAuthorized(changeMemberRoleAction)
	}

	oldRole := current[0]
	if len(current) > 1 {
		r.Log.WithFields(logrus.Fields{
			"workspaceId": workspace.Id.Hex(),
			"roles":       len(current),
		}).Warn("member holds several roles in workspace, reassigning the first")
	}

	if IsLastAdminRoleEntity(&oldRole) {
		return nil, apperrors.NewAdminRemovalForbidden()
	}

	var newRole *models.PermissionGroup
	if newPermissionGroupId != nil {
		newRole, err = r.assignableRole(ctx, workspace, *newPermissionGroupId, session)
		if err != nil {
			return nil, err
		}
	}

	if err := binding.unassign(ctx, oldRole.Id); err != nil {
		return nil, fmt.Errorf("unassign %s: %w", oldRole.Id.Hex(), err)
	}

	if newRole == nil {
		r.afterChange(ctx, workspace, binding, oldRole.Id, nil, session, origin)
		return binding.describe([]models.PermissionGroupInfo{}), nil
	}

	if err := binding.assign(ctx, newRole.Id); err != nil {
		// the unassign already landed, so its effects still have to go out
		r.afterChange(ctx, workspace, binding, oldRole.Id, nil, session, origin)
		return nil, fmt.Errorf("assign %s: %w", newRole.Id.Hex(), err)
	}

	r.afterChange(ctx, workspace, binding, oldRole.Id, &newRole.Id, session, origin)

	return binding.describe([]models.PermissionGroupInfo{newRole.Info()}), nil
}

// assignableRole resolves the target role. A role the caller cannot assign
// and a role of another workspace are reported the same way as a missing one.
func (r *RoleReassigner) assignableRole(ctx context.Context, workspace *models.Workspace, permissionGroupId primitive.ObjectID, session *models.SessionUser) (*models.PermissionGroup, error) {
	role, err := r.FindPermissionGroupById.Find(ctx, permissionGroupId, session.Can(models.AssignPermissionGroups))
	if err != nil {
		return nil, fmt.Errorf("find permission group %s: %w", permissionGroupId.Hex(), err)
	}

	if role == nil ||
		role.DefaultDomainId != workspace.Id ||
		role.DefaultDomainType != models.WorkspaceEntityType {
		return nil, apperrors.NewActionNotAuthorized(changeMemberRoleAction)
	}

	return role, nil
}

func (r *RoleReassigner) afterChange(ctx context.Context, workspace *models.Workspace, binding memberBinding, oldPermissionGroupId primitive.ObjectID, newPermissionGroupId *primitive.ObjectID, session *models.SessionUser, origin string) {
	log := r.Log.WithFields(logrus.Fields{
		"workspaceId":          workspace.Id.Hex(),
		"oldPermissionGroupId": oldPermissionGroupId.Hex(),
	})

	if r.PermissionGroupCache != nil {
		if err := r.PermissionGroupCache.Evict(ctx, binding.affectedUserIds()...); err != nil {
			log.WithError(err).Warn("failed to evict cached permission groups")
		}
	}

	if r.PublishMembershipEvent == nil {
		return
	}

	event := &models.MembershipChangedEvent{
		Id:                   uuid.NewString(),
		WorkspaceId:          workspace.Id,
		OldPermissionGroupId: oldPermissionGroupId,
		NewPermissionGroupId: newPermissionGroupId,
		ActorId:              session.UserId,
		Origin:               origin,
		OccurredAt:           time.Now().UTC(),
	}
	binding.subject(event)

	if err := r.PublishMembershipEvent.Publish(ctx, event); err != nil {
		r.Metrics.ObserveEventFailure()
		log.WithError(err).WithField("eventId", event.Id).Warn("failed to publish membership event")
	}
}

func NewRoleReassigner(
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
	findDefaultTenantId usecase.FindDefaultTenantIdRepository,
	findPermissionGroupById usecase.FindPermissionGroupByIdRepository,
	permissionGroupCache usecase.PermissionGroupCacheRepository,
	publishMembershipEvent usecase.PublishMembershipEventRepository,
	metrics *metrics.Metrics,
	log *logrus.Logger,
) *RoleReassigner {
	return &RoleReassigner{
		FindWorkspaceById:       findWorkspaceById,
		FindDefaultTenantId:     findDefaultTenantId,
		FindPermissionGroupById: findPermissionGroupById,
		PermissionGroupCache:    permissionGroupCache,
		PublishMembershipEvent:  publishMembershipEvent,
		Metrics:                 metrics,
		Log:                     log,
	}
}
