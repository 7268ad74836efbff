package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role name prefixes of the default roles created with every workspace.
const (
	AdministratorRolePrefix = "Administrator"
	DeveloperRolePrefix     = "Developer"
	AppViewerRolePrefix     = "App Viewer"
)

// PermissionGroup is a role scoped to one workspace or application. Its
// assignee sets are the role bindings of users and user groups.
type PermissionGroup struct {
	Id                 primitive.ObjectID   `bson:"_id" json:"id"`
	Name               string               `bson:"name" json:"name"`
	Description        string               `bson:"description" json:"description"`
	TenantId           primitive.ObjectID   `bson:"tenantId" json:"tenantId"`
	DefaultDomainId    primitive.ObjectID   `bson:"defaultDomainId" json:"defaultDomainId"`
	DefaultDomainType  string               `bson:"defaultDomainType" json:"defaultDomainType"`
	AssignedToUserIds  []primitive.ObjectID `bson:"assignedToUserIds" json:"assignedToUserIds"`
	AssignedToGroupIds []primitive.ObjectID `bson:"assignedToGroupIds" json:"assignedToGroupIds"`
	Policies           []Policy             `bson:"policies" json:"-"`
}

func (p *PermissionGroup) IsAdministrator() bool {
	return strings.HasPrefix(p.Name, AdministratorRolePrefix)
}

func (p *PermissionGroup) Info() PermissionGroupInfo {
	return PermissionGroupInfo{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		EntityType:  WorkspaceEntityType,
	}
}

type PermissionGroupInfo struct {
	Id          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	EntityType  string             `json:"entityType"`
}

// RoleRank orders default roles from most to least privileged. Unknown
// role names sort after the default ones.
func RoleRank(name string) int {
	switch {
	case strings.HasPrefix(name, AdministratorRolePrefix):
		return 0
	case strings.HasPrefix(name, DeveloperRolePrefix):
		return 1
	case strings.HasPrefix(name, AppViewerRolePrefix):
		return 2
	default:
		return 3
	}
}
