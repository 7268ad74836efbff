package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	Id            primitive.ObjectID `bson:"_id" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name" json:"name"`
	TenantId      primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	IsProvisioned bool               `bson:"isProvisioned" json:"isProvisioned"`
	Policies      []Policy           `bson:"policies" json:"-"`
}

type UserGroup struct {
	Id          primitive.ObjectID   `bson:"_id" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	TenantId    primitive.ObjectID   `bson:"tenantId" json:"tenantId"`
	Users       []primitive.ObjectID `bson:"users" json:"users"`
}
