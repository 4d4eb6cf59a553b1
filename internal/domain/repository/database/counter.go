package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/model"
)

// Counter increments a numeric field with the store's atomic increment
// primitive. Concurrent increments on the same id must not lose updates.
type Counter interface {
	IncrementField(ctx context.Context, id primitive.ObjectID, field string, delta int64) (*model.Video, error)
}
