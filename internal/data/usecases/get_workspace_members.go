package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/razelos/appsmith/internal/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type DbGetWorkspaceMembers struct {
	FindWorkspaceById               usecase.FindWorkspaceByIdRepository
	FindPermissionGroupsByWorkspace usecase.FindPermissionGroupsByWorkspaceRepository
	FindUsersByIds                  usecase.FindUsersByIdsRepository
	FindUserGroupsByIds             usecase.FindUserGroupsByIdsRepository
	Metrics                         *metrics.Metrics
	Log                             *logrus.Logger
}

func NewDbGetWorkspaceMembers(
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
	findPermissionGroupsByWorkspace usecase.FindPermissionGroupsByWorkspaceRepository,
	findUsersByIds usecase.FindUsersByIdsRepository,
	findUserGroupsByIds usecase.FindUserGroupsByIdsRepository,
	metrics *metrics.Metrics,
	log *logrus.Logger,
) *DbGetWorkspaceMembers {
	return &DbGetWorkspaceMembers{
		FindWorkspaceById:               findWorkspaceById,
		FindPermissionGroupsByWorkspace: findPermissionGroupsByWorkspace,
		FindUsersByIds:                  findUsersByIds,
		FindUserGroupsByIds:             findUserGroupsByIds,
		Metrics:                         metrics,
		Log:                             log,
	}
}

func (u *DbGetWorkspaceMembers) Get(ctx context.Context, workspaceId primitive.ObjectID, session *models.SessionUser) ([]models.MemberInfo, error) {
	defer u.Metrics.ObserveMemberListing(time.Now())

	workspace, err := u.FindWorkspaceById.Find(ctx, workspaceId, session.Can(models.ReadWorkspaces))
	if err != nil {
		return nil, fmt.Errorf("find workspace %s: %w", workspaceId.Hex(), err)
	}
	if workspace == nil {
		return nil, apperrors.NewResourceNotFound("workspace", workspaceId.Hex())
	}

	// Visibility is granted by the workspace read above.
	roles, err := u.FindPermissionGroupsByWorkspace.Find(ctx, workspace.Id, nil)
	if err != nil {
		return nil, fmt.Errorf("find roles of workspace %s: %w", workspace.Id.Hex(), err)
	}

	var userMembers, groupMembers []models.MemberInfo

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer utils.Recovery(&err)
		userMembers, err = u.userMembers(gctx, workspace, roles)
		return err
	})
	g.Go(func() (err error) {
		defer utils.Recovery(&err)
		groupMembers, err = u.groupMembers(gctx, roles)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	members := make([]models.MemberInfo, 0, len(userMembers)+len(groupMembers))
	members = append(members, userMembers...)
	members = append(members, groupMembers...)

	helpers.SortWorkspaceMembers(members)

	return members, nil
}

func (u *DbGetWorkspaceMembers) userMembers(ctx context.Context, workspace *models.Workspace, roles []models.PermissionGroup) ([]models.MemberInfo, error) {
	ids, rolesById := groupRoles(roles, func(role *models.PermissionGroup) []primitive.ObjectID {
		return role.AssignedToUserIds
	})

	users, err := u.FindUsersByIds.Find(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find workspace users: %w", err)
	}

	members := make([]models.MemberInfo, 0, len(ids))
	for _, id := range ids {
		user, ok := users[id]
		if !ok {
			u.Log.WithFields(logrus.Fields{
				"workspaceId": workspace.Id.Hex(),
				"userId":      id.Hex(),
			}).Warn("role assigned to a user that no longer exists, skipping")
			continue
		}

		userId := user.Id
		members = append(members, models.MemberInfo{
			UserId:   &userId,
			Username: user.Email,
			Name:     user.Name,
			Roles:    rolesById[id],
		})
	}

	return members, nil
}

func (u *DbGetWorkspaceMembers) groupMembers(ctx context.Context, roles []models.PermissionGroup) ([]models.MemberInfo, error) {
	ids, rolesById := groupRoles(roles, func(role *models.PermissionGroup) []primitive.ObjectID {
		return role.AssignedToGroupIds
	})

	userGroups, err := u.FindUserGroupsByIds.Find(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find workspace user groups: %w", err)
	}

	members := make([]models.MemberInfo, 0, len(ids))
	for _, id := range ids {
		userGroup, ok := userGroups[id]
		if !ok {
			return nil, apperrors.NewInconsistentSnapshot("user group", id.Hex())
		}

		userGroupId := userGroup.Id
		members = append(members, models.MemberInfo{
			UserGroupId: &userGroupId,
			Username:    userGroup.Name,
			Name:        userGroup.Name,
			Roles:       rolesById[id],
		})
	}

	return members, nil
}

// groupRoles inverts role -> assignees into assignee -> roles. ids keeps the
// order in which assignees were first seen.
func groupRoles(roles []models.PermissionGroup, assignees func(*models.PermissionGroup) []primitive.ObjectID) ([]primitive.ObjectID, map[primitive.ObjectID][]models.PermissionGroupInfo) {
	ids := []primitive.ObjectID{}
	rolesById := map[primitive.ObjectID][]models.PermissionGroupInfo{}

	for i := range roles {
		role := &roles[i]
		for _, id := range assignees(role) {
			if _, seen := rolesById[id]; !seen {
				ids = append(ids, id)
			}
			rolesById[id] = append(rolesById[id], role.Info())
		}
	}

	for _, id := range ids {
		helpers.SortRoles(rolesById[id])
	}

	return ids, rolesById
}
