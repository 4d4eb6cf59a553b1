package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/model"
)

type VideoWriter struct {
	db *Database
}

func NewVideoWriter(db *Database) *VideoWriter {
	return &VideoWriter{db: db}
}

func (w *VideoWriter) Insert(ctx context.Context, video *model.Video) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	if video.CreatedAt.IsZero() {
		video.CreatedAt = now
	}
	video.UpdatedAt = now

	res, err := w.db.videos().InsertOne(ctx, video)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)

	return id, nil
}
