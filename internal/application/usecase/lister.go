package usecase

import (
	"context"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository/database"
	"vidtube/pkg/apperr"
)

// Lister implements the Lister abstraction over the aggregation engine.
type Lister struct {
	aggregator database.Aggregator
}

func NewLister(aggregator database.Aggregator) *Lister {
	return &Lister{aggregator: aggregator}
}

// ListVideos returns one page of the published catalog. An empty page is a
// valid result; only pipeline execution failures are errors.
func (l *Lister) ListVideos(ctx context.Context, query dto.ListVideosQuery) (*entity.VideoPage, error) {
	page, err := l.aggregator.ListVideos(ctx, query)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while listing videos", err)
	}

	return page, nil
}
