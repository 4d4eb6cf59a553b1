package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
)

type VideoAggregator struct {
	db *Database
}

func NewVideoAggregator(db *Database) *VideoAggregator {
	return &VideoAggregator{db: db}
}

// facetResult is the raw shape of the $facet pagination stage.
type facetResult struct {
	Docs       []entity.VideoSummary `bson:"docs"`
	TotalCount []struct {
		Count int64 `bson:"count"`
	} `bson:"totalCount"`
}

func (a *VideoAggregator) ListVideos(ctx context.Context, query dto.ListVideosQuery) (*entity.VideoPage, error) {
	ctx, cancel := context.WithTimeout(ctx, a.db.QueryTimeout)
	defer cancel()

	cursor, err := a.db.videos().Aggregate(ctx, listPipeline(query))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []facetResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	page, limit := normalizePage(query.Page, query.Limit)

	var total int64
	docs := []entity.VideoSummary{}
	if len(results) > 0 {
		docs = results[0].Docs
		if len(results[0].TotalCount) > 0 {
			total = results[0].TotalCount[0].Count
		}
	}

	var totalPages int64
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &entity.VideoPage{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       limit,
		Page:        page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && total > 0,
	}, nil
}

func (a *VideoAggregator) GetVideoDetail(ctx context.Context, id primitive.ObjectID,
	viewer *primitive.ObjectID,
) (*entity.VideoDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, a.db.QueryTimeout)
	defer cancel()

	cursor, err := a.db.videos().Aggregate(ctx, detailPipeline(id, viewer))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []entity.VideoDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}

	if len(details) == 0 {
		return nil, nil
	}

	return &details[0], nil
}
