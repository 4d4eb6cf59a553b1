package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerSummary is the projection of a video's owner carried by list results.
// A zero value means the owner record is gone; listing still succeeds.
type OwnerSummary struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

// OwnerProfile extends OwnerSummary with viewer-relative subscription data.
type OwnerProfile struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username         string             `bson:"username" json:"username"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Avatar           string             `bson:"avatar" json:"avatar"`
	SubscribersCount int64              `bson:"subscribersCount" json:"subscribersCount"`
	IsSubscribed     bool               `bson:"isSubscribed" json:"isSubscribed"`
}

// VideoSummary is one enriched row of a catalog listing. Score is only set
// when the listing ran with a text query.
type VideoSummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string             `bson:"videoFile" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	Owner       OwnerSummary       `bson:"owner" json:"owner"`
	Score       float64            `bson:"score,omitempty" json:"score,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// VideoDetail is the single-video read model with like and subscription
// enrichment.
type VideoDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string             `bson:"videoFile" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	Owner       OwnerProfile       `bson:"owner" json:"owner"`
	TotalLikes  int64              `bson:"totalLikes" json:"totalLikes"`
	IsLiked     bool               `bson:"isLiked" json:"isLiked"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VideoPage is one page of a listing.
type VideoPage struct {
	Docs        []VideoSummary `json:"docs"`
	TotalDocs   int64          `json:"totalDocs"`
	Limit       int64          `json:"limit"`
	Page        int64          `json:"page"`
	TotalPages  int64          `json:"totalPages"`
	HasNextPage bool           `json:"hasNextPage"`
	HasPrevPage bool           `json:"hasPrevPage"`
}
