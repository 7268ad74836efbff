package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/razelos/appsmith/internal/domain/apperrors"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockFindUserById struct {
	findFn func(ctx context.Context, userId primitive.ObjectID) (*models.User, error)
}

func (m *mockFindUserById) Find(ctx context.Context, userId primitive.ObjectID) (*models.User, error) {
	return m.findFn(ctx, userId)
}

type mockFindUserGroupIdsByMember struct {
	calls  int
	findFn func(ctx context.Context, userId primitive.ObjectID) ([]primitive.ObjectID, error)
}

func (m *mockFindUserGroupIdsByMember) Find(ctx context.Context, userId primitive.ObjectID) ([]primitive.ObjectID, error) {
	m.calls++
	if m.findFn != nil {
		return m.findFn(ctx, userId)
	}
	panic("unexpected call to Find")
}

type mockFindPermissionGroupIdsForPrincipals struct {
	findFn func(ctx context.Context, userId primitive.ObjectID, userGroupIds []primitive.ObjectID) ([]primitive.ObjectID, error)
}

func (m *mockFindPermissionGroupIdsForPrincipals) Find(ctx context.Context, userId primitive.ObjectID, userGroupIds []primitive.ObjectID) ([]primitive.ObjectID, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userId, userGroupIds)
	}
	panic("unexpected call to Find")
}

func TestLoadSessionUser(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID(), Email: "dev@acme.com", TenantId: primitive.NewObjectID()}
	groupId := primitive.NewObjectID()
	pgA, pgB := primitive.NewObjectID(), primitive.NewObjectID()

	findUser := &mockFindUserById{findFn: func(_ context.Context, id primitive.ObjectID) (*models.User, error) {
		if id == user.Id {
			return user, nil
		}
		return nil, nil
	}}

	t.Run("cache miss loads and stores", func(t *testing.T) {
		var cached []string
		cache := &mockPermissionGroupCache{
			getFn: func(context.Context, primitive.ObjectID) ([]string, bool, error) { return nil, false, nil },
			setFn: func(_ context.Context, _ primitive.ObjectID, ids []string) error {
				cached = ids
				return nil
			},
		}
		groups := &mockFindUserGroupIdsByMember{findFn: func(context.Context, primitive.ObjectID) ([]primitive.ObjectID, error) {
			return []primitive.ObjectID{groupId}, nil
		}}
		principals := &mockFindPermissionGroupIdsForPrincipals{findFn: func(_ context.Context, userId primitive.ObjectID, userGroupIds []primitive.ObjectID) ([]primitive.ObjectID, error) {
			assert.Equal(t, user.Id, userId)
			assert.Equal(t, []primitive.ObjectID{groupId}, userGroupIds)
			return []primitive.ObjectID{pgA, pgB}, nil
		}}

		session, err := NewDbLoadSessionUser(findUser, groups, principals, cache, newTestMetrics(), newTestLogger()).Load(context.Background(), user.Id)

		require.NoError(t, err)
		assert.Equal(t, user.Id, session.UserId)
		assert.Equal(t, "dev@acme.com", session.Email)
		assert.Equal(t, user.TenantId, session.TenantId)
		assert.Equal(t, []string{pgA.Hex(), pgB.Hex()}, session.PermissionGroupIds)
		assert.Equal(t, session.PermissionGroupIds, cached)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		cache := &mockPermissionGroupCache{
			getFn: func(context.Context, primitive.ObjectID) ([]string, bool, error) { return []string{"cached"}, true, nil },
		}
		groups := &mockFindUserGroupIdsByMember{}

		session, err := NewDbLoadSessionUser(findUser, groups, &mockFindPermissionGroupIdsForPrincipals{}, cache, newTestMetrics(), newTestLogger()).Load(context.Background(), user.Id)

		require.NoError(t, err)
		assert.Equal(t, []string{"cached"}, session.PermissionGroupIds)
		assert.Zero(t, groups.calls)
	})

	t.Run("cache errors fall back to the store", func(t *testing.T) {
		cache := &mockPermissionGroupCache{
			getFn: func(context.Context, primitive.ObjectID) ([]string, bool, error) { return nil, false, errors.New("redis down") },
			setFn: func(context.Context, primitive.ObjectID, []string) error { return errors.New("redis down") },
		}
		groups := &mockFindUserGroupIdsByMember{findFn: func(context.Context, primitive.ObjectID) ([]primitive.ObjectID, error) {
			return []primitive.ObjectID{}, nil
		}}
		principals := &mockFindPermissionGroupIdsForPrincipals{findFn: func(context.Context, primitive.ObjectID, []primitive.ObjectID) ([]primitive.ObjectID, error) {
			return []primitive.ObjectID{pgA}, nil
		}}

		session, err := NewDbLoadSessionUser(findUser, groups, principals, cache, newTestMetrics(), newTestLogger()).Load(context.Background(), user.Id)

		require.NoError(t, err)
		assert.Equal(t, []string{pgA.Hex()}, session.PermissionGroupIds)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := NewDbLoadSessionUser(findUser, &mockFindUserGroupIdsByMember{}, &mockFindPermissionGroupIdsForPrincipals{}, &mockPermissionGroupCache{}, newTestMetrics(), newTestLogger()).Load(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
