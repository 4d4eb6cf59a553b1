package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/domain/model"
	repoDatabase "vidtube/internal/domain/repository/database"
)

type VideoRetriever struct {
	db *Database
}

func NewVideoRetriever(db *Database) *VideoRetriever {
	return &VideoRetriever{db: db}
}

func (r *VideoRetriever) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var video model.Video
	err := r.db.videos().FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repoDatabase.ErrNoDocument
		}

		return nil, err
	}

	return &video, nil
}
