package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/domain/model"
	repoDatabase "vidtube/internal/domain/repository/database"
)

type VideoCounter struct {
	db *Database
}

func NewVideoCounter(db *Database) *VideoCounter {
	return &VideoCounter{db: db}
}

// IncrementField bumps a numeric field with $inc. The server applies the
// increment atomically, so concurrent calls on the same id never lose updates.
func (c *VideoCounter) IncrementField(ctx context.Context, id primitive.ObjectID,
	field string, delta int64,
) (*model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, c.db.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video model.Video
	err := c.db.videos().FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$inc": bson.M{field: delta}}, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repoDatabase.ErrNoDocument
		}

		return nil, err
	}

	return &video, nil
}
