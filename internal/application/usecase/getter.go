package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository/database"
	"vidtube/pkg/apperr"
)

// Getter implements the Getter abstraction for the enriched video view.
type Getter struct {
	aggregator database.Aggregator
}

func NewGetter(aggregator database.Aggregator) *Getter {
	return &Getter{aggregator: aggregator}
}

func (g *Getter) GetVideoByID(ctx context.Context, id string,
	viewer *primitive.ObjectID,
) (*entity.VideoDetail, error) {
	videoID, err := parseVideoID(id)
	if err != nil {
		return nil, err
	}

	detail, err := g.aggregator.GetVideoDetail(ctx, videoID, viewer)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while loading the video", err)
	}
	if detail == nil {
		return nil, apperr.NotFoundf("video with the id %s is not found", id)
	}

	return detail, nil
}
