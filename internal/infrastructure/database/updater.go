package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/domain/model"
	repoDatabase "vidtube/internal/domain/repository/database"
)

type VideoUpdater struct {
	db *Database
}

func NewVideoUpdater(db *Database) *VideoUpdater {
	return &VideoUpdater{db: db}
}

// UpdateFields applies a partial $set in a single document-level atomic
// operation and returns the document as updated.
func (u *VideoUpdater) UpdateFields(ctx context.Context, id primitive.ObjectID,
	fields map[string]any,
) (*model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video model.Video
	err := u.db.videos().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repoDatabase.ErrNoDocument
		}

		return nil, err
	}

	return &video, nil
}
