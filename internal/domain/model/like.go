package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Like relates a viewer to a video. The catalog uses it only for aggregate
// counting and membership tests.
type Like struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Video   primitive.ObjectID `bson:"video" json:"video"`
	LikedBy primitive.ObjectID `bson:"likedBy" json:"likedBy"`
}
