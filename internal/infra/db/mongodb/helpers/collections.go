package helpers

const (
	WorkspaceCollection       = "workspace"
	PermissionGroupCollection = "permissionGroup"
	UserCollection            = "user"
	UserGroupCollection       = "userGroup"
	TenantCollection          = "tenant"
)
