package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
)

// Aggregator executes the enrichment pipelines. GetVideoDetail returns nil
// without error when no document matches; the usecase turns that into a
// not-found failure.
type Aggregator interface {
	ListVideos(ctx context.Context, query dto.ListVideosQuery) (*entity.VideoPage, error)
	GetVideoDetail(ctx context.Context, id primitive.ObjectID, viewer *primitive.ObjectID) (*entity.VideoDetail, error)
}
