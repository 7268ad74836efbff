package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DbUpdatePermissionGroupForMember struct {
	ByUser  usecase.RoleReassignmentStrategy
	ByGroup usecase.RoleReassignmentStrategy
	Metrics *metrics.Metrics
	Log     *logrus.Logger
}

func NewDbUpdatePermissionGroupForMember(byUser usecase.RoleReassignmentStrategy, byGroup usecase.RoleReassignmentStrategy, metrics *metrics.Metrics, log *logrus.Logger) *DbUpdatePermissionGroupForMember {
	return &DbUpdatePermissionGroupForMember{
		ByUser:  byUser,
		ByGroup: byGroup,
		Metrics: metrics,
		Log:     log,
	}
}

func (u *DbUpdatePermissionGroupForMember) Update(ctx context.Context, workspaceId primitive.ObjectID, input *usecase.UpdatePermissionGroupInput, session *models.SessionUser) (*models.MemberInfo, error) {
	if input == nil {
		return nil, apperrors.NewInvalidParameter("username or userGroupId")
	}

	scoped := *input
	scoped.Username = strings.TrimSpace(input.Username)

	hasUser := scoped.Username != ""
	hasGroup := scoped.UserGroupId != nil
	if hasUser == hasGroup {
		return nil, apperrors.NewInvalidParameter("username or userGroupId")
	}

	strategy, principal := u.ByGroup, "group"
	if hasUser {
		strategy, principal = u.ByUser, "user"
	}

	log := u.Log.WithFields(logrus.Fields{
		"workspaceId": workspaceId.Hex(),
		"principal":   principal,
		"actorId":     session.UserId.Hex(),
	})

	member, err := strategy.Reassign(ctx, workspaceId, &scoped, session)
	if err != nil {
		u.Metrics.ObserveReassignment(principal, outcome(err))

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			log.WithField("code", appErr.Code).Info(appErr.Message)
		} else {
			log.WithError(err).Error("role reassignment failed")
		}
		return nil, err
	}

	u.Metrics.ObserveReassignment(principal, "success")
	log.WithField("roles", len(member.Roles)).Info("member role reassigned")

	return member, nil
}

func outcome(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "error"
}
