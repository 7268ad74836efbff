package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MembershipChangedEvent struct {
	Id                   string              `json:"id"`
	WorkspaceId          primitive.ObjectID  `json:"workspaceId"`
	UserId               *primitive.ObjectID `json:"userId,omitempty"`
	UserGroupId          *primitive.ObjectID `json:"userGroupId,omitempty"`
	OldPermissionGroupId primitive.ObjectID  `json:"oldPermissionGroupId"`
	NewPermissionGroupId *primitive.ObjectID `json:"newPermissionGroupId,omitempty"`
	ActorId              primitive.ObjectID  `json:"actorId"`
	Origin               string              `json:"origin,omitempty"`
	OccurredAt           time.Time           `json:"occurredAt"`
}
