package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/model"
)

type Writer interface {
	Insert(ctx context.Context, video *model.Video) (primitive.ObjectID, error)
}
