package usecases

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.NewRegistry())
}

// fakeStore is an in-memory role-binding store with the same set semantics
// as the Mongo repositories. Permissions listed in denied hide every
// document from checked reads.
type fakeStore struct {
	mu sync.Mutex

	tenantId   primitive.ObjectID
	workspaces map[primitive.ObjectID]*models.Workspace
	users      map[primitive.ObjectID]*models.User
	userGroups map[primitive.ObjectID]*models.UserGroup
	roles      map[primitive.ObjectID]*models.PermissionGroup
	denied     map[models.AclPermission]bool

	reads      int
	writes     int
	failAssign error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tenantId:   primitive.NewObjectID(),
		workspaces: map[primitive.ObjectID]*models.Workspace{},
		users:      map[primitive.ObjectID]*models.User{},
		userGroups: map[primitive.ObjectID]*models.UserGroup{},
		roles:      map[primitive.ObjectID]*models.PermissionGroup{},
		denied:     map[models.AclPermission]bool{},
	}
}

func (s *fakeStore) addWorkspace(name string) *models.Workspace {
	w := &models.Workspace{Id: primitive.NewObjectID(), Name: name, TenantId: s.tenantId}
	s.workspaces[w.Id] = w
	return w
}

func (s *fakeStore) addRole(workspace *models.Workspace, name string) *models.PermissionGroup {
	r := &models.PermissionGroup{
		Id:                 primitive.NewObjectID(),
		Name:               name,
		TenantId:           s.tenantId,
		DefaultDomainId:    workspace.Id,
		DefaultDomainType:  models.WorkspaceEntityType,
		AssignedToUserIds:  []primitive.ObjectID{},
		AssignedToGroupIds: []primitive.ObjectID{},
	}
	s.roles[r.Id] = r
	workspace.DefaultPermissionGroups = append(workspace.DefaultPermissionGroups, r.Id)
	return r
}

func (s *fakeStore) addUser(email string, name string) *models.User {
	u := &models.User{Id: primitive.NewObjectID(), Email: email, Name: name, TenantId: s.tenantId}
	s.users[u.Id] = u
	return u
}

func (s *fakeStore) addUserGroup(name string, members ...primitive.ObjectID) *models.UserGroup {
	g := &models.UserGroup{Id: primitive.NewObjectID(), Name: name, TenantId: s.tenantId, Users: members}
	s.userGroups[g.Id] = g
	return g
}

func (s *fakeStore) visible(capability *models.Capability) bool {
	return capability == nil || !s.denied[capability.Permission]
}

func (s *fakeStore) role(id primitive.ObjectID) models.PermissionGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePermissionGroup(s.roles[id])
}

func (s *fakeStore) rolesWhere(workspaceId primitive.ObjectID, capability *models.Capability, match func(*models.PermissionGroup) bool) []models.PermissionGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++

	result := []models.PermissionGroup{}
	if !s.visible(capability) {
		return result
	}
	for _, r := range s.roles {
		if r.DefaultDomainId == workspaceId && r.DefaultDomainType == models.WorkspaceEntityType && match(r) {
			result = append(result, clonePermissionGroup(r))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.Compare(result[i].Id.Hex(), result[j].Id.Hex()) < 0
	})
	return result
}

func (s *fakeStore) update(permissionGroupId primitive.ObjectID, apply func(*models.PermissionGroup)) (*models.PermissionGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++

	r, ok := s.roles[permissionGroupId]
	if !ok {
		return nil, errors.New("permission group not found")
	}
	apply(r)
	out := clonePermissionGroup(r)
	return &out, nil
}

func clonePermissionGroup(r *models.PermissionGroup) models.PermissionGroup {
	out := *r
	out.AssignedToUserIds = append([]primitive.ObjectID{}, r.AssignedToUserIds...)
	out.AssignedToGroupIds = append([]primitive.ObjectID{}, r.AssignedToGroupIds...)
	return out
}

func addToSet(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range set {
		if existing == id {
			return set
		}
	}
	return append(set, id)
}

func pull(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := set[:0]
	for _, existing := range set {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func contains(set []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, existing := range set {
		if existing == id {
			return true
		}
	}
	return false
}

type fakeWorkspaces struct{ s *fakeStore }

func (f fakeWorkspaces) Find(_ context.Context, id primitive.ObjectID, capability *models.Capability) (*models.Workspace, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.reads++

	w, ok := f.s.workspaces[id]
	if !ok || !f.s.visible(capability) {
		return nil, nil
	}
	out := *w
	return &out, nil
}

type fakeTenants struct{ s *fakeStore }

func (f fakeTenants) Find(_ context.Context) (primitive.ObjectID, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.reads++
	return f.s.tenantId, nil
}

type fakeRoleById struct{ s *fakeStore }

func (f fakeRoleById) Find(_ context.Context, id primitive.ObjectID, capability *models.Capability) (*models.PermissionGroup, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.reads++

	r, ok := f.s.roles[id]
	if !ok || !f.s.visible(capability) {
		return nil, nil
	}
	out := clonePermissionGroup(r)
	return &out, nil
}

type fakeRolesByWorkspace struct{ s *fakeStore }

func (f fakeRolesByWorkspace) Find(_ context.Context, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	return f.s.rolesWhere(workspaceId, capability, func(*models.PermissionGroup) bool { return true }), nil
}

type fakeRolesOfGroup struct{ s *fakeStore }

func (f fakeRolesOfGroup) Find(_ context.Context, userGroupId primitive.ObjectID, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	return f.s.rolesWhere(workspaceId, capability, func(r *models.PermissionGroup) bool {
		return contains(r.AssignedToGroupIds, userGroupId)
	}), nil
}

type fakeRolesOfUser struct{ s *fakeStore }

func (f fakeRolesOfUser) Find(_ context.Context, userId primitive.ObjectID, workspaceId primitive.ObjectID, capability *models.Capability) ([]models.PermissionGroup, error) {
	return f.s.rolesWhere(workspaceId, capability, func(r *models.PermissionGroup) bool {
		return contains(r.AssignedToUserIds, userId)
	}), nil
}

type fakeGroupAssignments struct{ s *fakeStore }

func (f fakeGroupAssignments) Assign(_ context.Context, permissionGroupId primitive.ObjectID, userGroupId primitive.ObjectID) (*models.PermissionGroup, error) {
	if f.s.failAssign != nil {
		return nil, f.s.failAssign
	}
	return f.s.update(permissionGroupId, func(r *models.PermissionGroup) {
		r.AssignedToGroupIds = addToSet(r.AssignedToGroupIds, userGroupId)
	})
}

func (f fakeGroupAssignments) Unassign(_ context.Context, permissionGroupId primitive.ObjectID, userGroupId primitive.ObjectID) (*models.PermissionGroup, error) {
	return f.s.update(permissionGroupId, func(r *models.PermissionGroup) {
		r.AssignedToGroupIds = pull(r.AssignedToGroupIds, userGroupId)
	})
}

type fakeUserAssignments struct{ s *fakeStore }

func (f fakeUserAssignments) Assign(_ context.Context, permissionGroupId primitive.ObjectID, userId primitive.ObjectID) (*models.PermissionGroup, error) {
	if f.s.failAssign != nil {
		return nil, f.s.failAssign
	}
	return f.s.update(permissionGroupId, func(r *models.PermissionGroup) {
		r.AssignedToUserIds = addToSet(r.AssignedToUserIds, userId)
	})
}

func (f fakeUserAssignments) Unassign(_ context.Context, permissionGroupId primitive.ObjectID, userId primitive.ObjectID) (*models.PermissionGroup, error) {
	return f.s.update(permissionGroupId, func(r *models.PermissionGroup) {
		r.AssignedToUserIds = pull(r.AssignedToUserIds, userId)
	})
}

type fakeGroupByIdAndTenant struct{ s *fakeStore }

func (f fakeGroupByIdAndTenant) Find(_ context.Context, userGroupId primitive.ObjectID, tenantId primitive.ObjectID) (*models.UserGroup, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.reads++

	g, ok := f.s.userGroups[userGroupId]
	if !ok || g.TenantId != tenantId {
		return nil, nil
	}
	out := *g
	return &out, nil
}

type fakeUserByEmailAndTenant struct{ s *fakeStore }

func (f fakeUserByEmailAndTenant) Find(_ context.Context, email string, tenantId primitive.ObjectID) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.reads++

	for _, u := range f.s.users {
		if strings.EqualFold(u.Email, email) && u.TenantId == tenantId {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

type fakeUsersByIds struct{ s *fakeStore }

func (f fakeUsersByIds) Find(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.reads++

	out := map[primitive.ObjectID]models.User{}
	for _, id := range ids {
		if u, ok := f.s.users[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

type fakeGroupsByIds struct{ s *fakeStore }

func (f fakeGroupsByIds) Find(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserGroup, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.reads++

	out := map[primitive.ObjectID]models.UserGroup{}
	for _, id := range ids {
		if g, ok := f.s.userGroups[id]; ok {
			out[id] = *g
		}
	}
	return out, nil
}

// mockPermissionGroupCache panics on calls a test did not expect.
type mockPermissionGroupCache struct {
	getFn   func(ctx context.Context, userId primitive.ObjectID) ([]string, bool, error)
	setFn   func(ctx context.Context, userId primitive.ObjectID, ids []string) error
	evictFn func(ctx context.Context, userIds ...primitive.ObjectID) error
}

func (m *mockPermissionGroupCache) Get(ctx context.Context, userId primitive.ObjectID) ([]string, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userId)
	}
	panic("unexpected call to Get")
}

func (m *mockPermissionGroupCache) Set(ctx context.Context, userId primitive.ObjectID, ids []string) error {
	if m.setFn != nil {
		return m.setFn(ctx, userId, ids)
	}
	panic("unexpected call to Set")
}

func (m *mockPermissionGroupCache) Evict(ctx context.Context, userIds ...primitive.ObjectID) error {
	if m.evictFn != nil {
		return m.evictFn(ctx, userIds...)
	}
	panic("unexpected call to Evict")
}

type mockPublisher struct {
	publishFn func(ctx context.Context, event *models.MembershipChangedEvent) error
}

func (m *mockPublisher) Publish(ctx context.Context, event *models.MembershipChangedEvent) error {
	if m.publishFn != nil {
		return m.publishFn(ctx, event)
	}
	panic("unexpected call to Publish")
}

// reassignFixture wires the orchestrator to a fakeStore and records the
// side effects of every successful mutation.
type reassignFixture struct {
	store   *fakeStore
	evicted [][]primitive.ObjectID
	events  []*models.MembershipChangedEvent
	cache   *mockPermissionGroupCache
	pub     *mockPublisher
	usecase *DbUpdatePermissionGroupForMember
	session *models.SessionUser
}

func newReassignFixture() *reassignFixture {
	f := &reassignFixture{
		store:   newFakeStore(),
		session: &models.SessionUser{UserId: primitive.NewObjectID(), PermissionGroupIds: []string{"caller"}},
	}
	f.cache = &mockPermissionGroupCache{
		evictFn: func(_ context.Context, userIds ...primitive.ObjectID) error {
			f.evicted = append(f.evicted, userIds)
			return nil
		},
	}
	f.pub = &mockPublisher{
		publishFn: func(_ context.Context, event *models.MembershipChangedEvent) error {
			f.events = append(f.events, event)
			return nil
		},
	}

	log := newTestLogger()
	m := newTestMetrics()
	s := f.store

	reassigner := NewRoleReassigner(fakeWorkspaces{s}, fakeTenants{s}, fakeRoleById{s}, f.cache, f.pub, m, log)
	byUser := NewReassignByUser(reassigner, fakeUserByEmailAndTenant{s}, fakeRolesOfUser{s}, fakeUserAssignments{s}, fakeUserAssignments{s})
	byGroup := NewReassignByGroup(reassigner, fakeGroupByIdAndTenant{s}, fakeRolesOfGroup{s}, fakeGroupAssignments{s}, fakeGroupAssignments{s})

	f.usecase = NewDbUpdatePermissionGroupForMember(byUser, byGroup, m, log)
	return f
}
