package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error)
}
