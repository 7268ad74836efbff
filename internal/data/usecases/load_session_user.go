package usecases

import (
	"context"
	"fmt"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DbLoadSessionUser struct {
	FindUserById                        usecase.FindUserByIdRepository
	FindUserGroupIdsByMember            usecase.FindUserGroupIdsByMemberRepository
	FindPermissionGroupIdsForPrincipals usecase.FindPermissionGroupIdsForPrincipalsRepository
	PermissionGroupCache                usecase.PermissionGroupCacheRepository
	Metrics                             *metrics.Metrics
	Log                                 *logrus.Logger
}

func NewDbLoadSessionUser(
	findUserById usecase.FindUserByIdRepository,
	findUserGroupIdsByMember usecase.FindUserGroupIdsByMemberRepository,
	findPermissionGroupIdsForPrincipals usecase.FindPermissionGroupIdsForPrincipalsRepository,
	permissionGroupCache usecase.PermissionGroupCacheRepository,
	metrics *metrics.Metrics,
	log *logrus.Logger,
) *DbLoadSessionUser {
	return &DbLoadSessionUser{
		FindUserById:                        findUserById,
		FindUserGroupIdsByMember:            findUserGroupIdsByMember,
		FindPermissionGroupIdsForPrincipals: findPermissionGroupIdsForPrincipals,
		PermissionGroupCache:                permissionGroupCache,
		Metrics:                             metrics,
		Log:                                 log,
	}
}

func (u *DbLoadSessionUser) Load(ctx context.Context, userId primitive.ObjectID) (*models.SessionUser, error) {
	user, err := u.FindUserById.Find(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userId.Hex(), err)
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFound("user", userId.Hex())
	}

	permissionGroupIds, err := u.permissionGroupIds(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &models.SessionUser{
		UserId:             user.Id,
		Email:              user.Email,
		TenantId:           user.TenantId,
		PermissionGroupIds: permissionGroupIds,
	}, nil
}

// A cache failure falls back to the store; the cache only saves the two
// lookups below.
func (u *DbLoadSessionUser) permissionGroupIds(ctx context.Context, userId primitive.ObjectID) ([]string, error) {
	log := u.Log.WithField("userId", userId.Hex())

	ids, found, err := u.PermissionGroupCache.Get(ctx, userId)
	if err != nil {
		log.WithError(err).Warn("permission group cache unavailable")
	} else {
		u.Metrics.ObserveCacheLookup(found)
		if found {
			return ids, nil
		}
	}

	userGroupIds, err := u.FindUserGroupIdsByMember.Find(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("find user groups of %s: %w", userId.Hex(), err)
	}

	permissionGroupIds, err := u.FindPermissionGroupIdsForPrincipals.Find(ctx, userId, userGroupIds)
	if err != nil {
		return nil, fmt.Errorf("find permission groups of %s: %w", userId.Hex(), err)
	}

	ids = make([]string, 0, len(permissionGroupIds))
	for _, id := range permissionGroupIds {
		ids = append(ids, id.Hex())
	}

	if err := u.PermissionGroupCache.Set(ctx, userId, ids); err != nil {
		log.WithError(err).Warn("failed to cache permission groups")
	}

	return ids, nil
}
