package usecases

import "github.com/razelos/appsmith/internal/domain/models"

// IsLastAdminRoleEntity reports whether removing the single assignee of an
// administrator role would leave the workspace without an admin.
func IsLastAdminRoleEntity(permissionGroup *models.PermissionGroup) bool {
	if permissionGroup == nil || !permissionGroup.IsAdministrator() {
		return false
	}

	users := len(permissionGroup.AssignedToUserIds)
	groups := len(permissionGroup.AssignedToGroupIds)

	return (users == 1 && groups == 0) || (users == 0 && groups == 1)
}
