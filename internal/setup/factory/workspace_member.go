package factory

import (
	"github.com/razelos/appsmith/internal/data/usecases"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/permission_group_repository"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/tenant_repository"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/user_group_repository"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/repositories/workspace_repository"
	controllers "github.com/razelos/appsmith/internal/presentation/controllers/workspace_member"
)

func makeGetWorkspaceMembers(deps *Dependencies) *usecases.DbGetWorkspaceMembers {
	return usecases.NewDbGetWorkspaceMembers(
		workspace_repository.NewFindWorkspaceByIdRepository(deps.Db),
		permission_group_repository.NewFindPermissionGroupsByWorkspaceRepository(deps.Db),
		user_repository.NewFindUsersByIdsRepository(deps.Db),
		user_group_repository.NewFindUserGroupsByIdsRepository(deps.Db),
		deps.Metrics,
		deps.Log,
	)
}

// MakeUpdatePermissionGroupController wires both reassignment strategies
// onto one shared reassigner.
func MakeUpdatePermissionGroupController(deps *Dependencies) *controllers.UpdatePermissionGroupController {
	reassigner := usecases.NewRoleReassigner(
		workspace_repository.NewFindWorkspaceByIdRepository(deps.Db),
		tenant_repository.NewFindDefaultTenantIdRepository(deps.Db),
		permission_group_repository.NewFindPermissionGroupByIdRepository(deps.Db),
		deps.PermissionGroupCache,
		deps.PublishMembershipEvent,
		deps.Metrics,
		deps.Log,
	)

	byUser := usecases.NewReassignByUser(
		reassigner,
		user_repository.NewFindUserByEmailAndTenantRepository(deps.Db),
		permission_group_repository.NewFindPermissionGroupsAssignedToUserRepository(deps.Db),
		permission_group_repository.NewUnassignUserRepository(deps.Db),
		permission_group_repository.NewAssignUserRepository(deps.Db),
	)

	byGroup := usecases.NewReassignByGroup(
		reassigner,
		user_group_repository.NewFindUserGroupByIdAndTenantRepository(deps.Db),
		permission_group_repository.NewFindPermissionGroupsAssignedToGroupRepository(deps.Db),
		permission_group_repository.NewUnassignUserGroupRepository(deps.Db),
		permission_group_repository.NewAssignUserGroupRepository(deps.Db),
	)

	updatePermissionGroup := usecases.NewDbUpdatePermissionGroupForMember(byUser, byGroup, deps.Metrics, deps.Log)
	return controllers.NewUpdatePermissionGroupController(updatePermissionGroup, deps.Log)
}

func MakeGetMembersController(deps *Dependencies) *controllers.GetMembersController {
	return controllers.NewGetMembersController(makeGetWorkspaceMembers(deps), deps.Log)
}

func MakeExportMembersController(deps *Dependencies) *controllers.ExportMembersController {
	export := usecases.NewDbExportWorkspaceMembers(makeGetWorkspaceMembers(deps))
	return controllers.NewExportMembersController(export, deps.Log)
}

func MakeGetRolesController(deps *Dependencies) *controllers.GetRolesController {
	getRoles := usecases.NewDbGetWorkspaceRoles(
		workspace_repository.NewFindWorkspaceByIdRepository(deps.Db),
		permission_group_repository.NewFindPermissionGroupsByWorkspaceRepository(deps.Db),
	)
	return controllers.NewGetRolesController(getRoles, deps.Log)
}
