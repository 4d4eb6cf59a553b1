package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/model"
)

// Updater applies a partial field set atomically at the document level and
// returns the updated document, or a not-found error when no document matches.
type Updater interface {
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.Video, error)
}
