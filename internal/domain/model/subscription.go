package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription relates a subscriber to a channel (a user id). The catalog
// uses it only for aggregate counting and membership tests.
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Channel    primitive.ObjectID `bson:"channel" json:"channel"`
	Subscriber primitive.ObjectID `bson:"subscriber" json:"subscriber"`
}
