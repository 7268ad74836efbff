package models

// AclPermission names a capability checked against a document's policies.
type AclPermission string

const (
	ReadWorkspaces           AclPermission = "read:workspaces"
	ReadPermissionGroups     AclPermission = "read:permissionGroups"
	AssignPermissionGroups   AclPermission = "assign:permissionGroups"
	UnassignPermissionGroups AclPermission = "unassign:permissionGroups"
)

type Policy struct {
	Permission       AclPermission `bson:"permission" json:"permission"`
	PermissionGroups []string      `bson:"permissionGroups" json:"permissionGroups"`
}

// Capability is the authorization token passed into every checked store
// call: the permission required and the caller's permission groups.
type Capability struct {
	Permission         AclPermission
	PermissionGroupIds []string
}
