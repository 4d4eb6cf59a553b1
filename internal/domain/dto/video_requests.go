package dto

import (
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilePayload is a locally staged upload handed to the blob store. The reader
// must support seeking so the store can probe media metadata before streaming.
type FilePayload struct {
	Reader io.ReadSeeker
	Size   int64
}

// ListVideosQuery carries the listing parameters after parsing. Zero or
// negative Page/Limit fall back to 1/10; an empty Query disables text search.
type ListVideosQuery struct {
	Query    string
	SortBy   string
	SortType string
	Owner    *primitive.ObjectID
	Page     int64
	Limit    int64
}

// PublishVideoInput is everything the create saga needs. Owner is the caller
// identity recorded on the document; IsPublished defaults to true when nil.
type PublishVideoInput struct {
	Title       string
	Description string
	IsPublished *bool
	Video       *FilePayload
	Thumbnail   *FilePayload
	Owner       primitive.ObjectID
}

// UpdateVideoInput carries a partial edit. Empty strings retain the stored
// value; a nil Thumbnail keeps the current blob.
type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *FilePayload
}
