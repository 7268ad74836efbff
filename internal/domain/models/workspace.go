package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const WorkspaceEntityType = "Workspace"

type Workspace struct {
	Id                      primitive.ObjectID   `bson:"_id" json:"id"`
	Name                    string               `bson:"name" json:"name"`
	TenantId                primitive.ObjectID   `bson:"tenantId" json:"tenantId"`
	DefaultPermissionGroups []primitive.ObjectID `bson:"defaultPermissionGroups" json:"defaultPermissionGroups"`
	Policies                []Policy             `bson:"policies" json:"-"`
}

type Tenant struct {
	Id   primitive.ObjectID `bson:"_id" json:"id"`
	Slug string             `bson:"slug" json:"slug"`
}
