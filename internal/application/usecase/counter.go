package usecase

import (
	"context"
	"errors"

	"vidtube/internal/domain/model"
	"vidtube/internal/domain/repository/database"
	"vidtube/pkg/apperr"
)

// Counter implements the view-count increment on the store's atomic counter
// primitive; it never reads, modifies and writes back.
type Counter struct {
	counter database.Counter
}

func NewCounter(counter database.Counter) *Counter {
	return &Counter{counter: counter}
}

func (c *Counter) IncrementViews(ctx context.Context, id string) (*model.Video, error) {
	videoID, err := parseVideoID(id)
	if err != nil {
		return nil, err
	}

	video, err := c.counter.IncrementField(ctx, videoID, "views", 1)
	if err != nil {
		if errors.Is(err, database.ErrNoDocument) {
			return nil, apperr.NotFoundf("video with the id %s is not found", id)
		}

		return nil, apperr.Wrap(apperr.Persistence, "update view count failed", err)
	}

	return video, nil
}
