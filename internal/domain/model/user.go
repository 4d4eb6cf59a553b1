package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is owned by the identity service; the catalog only reads it through
// aggregation lookups.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}
