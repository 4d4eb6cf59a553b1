package abstraction

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/entity"
)

// Getter serves the enriched single-video view. A nil viewer yields false
// viewer-relative flags.
type Getter interface {
	GetVideoByID(ctx context.Context, id string, viewer *primitive.ObjectID) (*entity.VideoDetail, error)
}
