package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type SessionUser struct {
	UserId             primitive.ObjectID `json:"userId"`
	Email              string             `json:"email"`
	TenantId           primitive.ObjectID `json:"tenantId"`
	PermissionGroupIds []string           `json:"permissionGroupIds"`
}

func (s *SessionUser) Can(permission AclPermission) *Capability {
	return &Capability{
		Permission:         permission,
		PermissionGroupIds: s.PermissionGroupIds,
	}
}
