package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MemberInfo is one principal's view of its roles in a workspace. Exactly
// one of UserId or UserGroupId is set.
type MemberInfo struct {
	UserId      *primitive.ObjectID   `json:"userId,omitempty"`
	UserGroupId *primitive.ObjectID   `json:"userGroupId,omitempty"`
	Username    string                `json:"username,omitempty"`
	Name        string                `json:"name"`
	Roles       []PermissionGroupInfo `json:"roles"`
}

func (m *MemberInfo) IsGroup() bool {
	return m.UserGroupId != nil
}

func (m *MemberInfo) PrincipalId() primitive.ObjectID {
	if m.UserGroupId != nil {
		return *m.UserGroupId
	}
	if m.UserId != nil {
		return *m.UserId
	}
	return primitive.NilObjectID
}

// DisplayName is the username for users and the name for groups.
func (m *MemberInfo) DisplayName() string {
	if !m.IsGroup() && m.Username != "" {
		return m.Username
	}
	return m.Name
}
