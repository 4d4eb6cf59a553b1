package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/entity"
	"vidtube/pkg/apperr"
)

func TestGetVideoByID(t *testing.T) {
	t.Parallel()

	detail := &entity.VideoDetail{
		Title:      "city timelapse",
		TotalLikes: 3,
		IsLiked:    true,
	}
	getter := NewGetter(&fakeAggregator{detail: detail})

	viewer := primitive.NewObjectID()
	got, err := getter.GetVideoByID(context.Background(), primitive.NewObjectID().Hex(), &viewer)
	require.NoError(t, err)
	require.Equal(t, detail, got)
}

func TestGetVideoByID_NotFound(t *testing.T) {
	t.Parallel()

	getter := NewGetter(&fakeAggregator{detail: nil})

	_, err := getter.GetVideoByID(context.Background(), primitive.NewObjectID().Hex(), nil)
	require.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestGetVideoByID_InvalidID(t *testing.T) {
	t.Parallel()

	aggregator := &fakeAggregator{}
	getter := NewGetter(aggregator)

	_, err := getter.GetVideoByID(context.Background(), "short", nil)
	require.True(t, apperr.IsKind(err, apperr.Validation))
	require.Zero(t, aggregator.calls)
}

func TestGetVideoByID_PipelineError(t *testing.T) {
	t.Parallel()

	getter := NewGetter(&fakeAggregator{err: context.DeadlineExceeded})

	_, err := getter.GetVideoByID(context.Background(), primitive.NewObjectID().Hex(), nil)
	require.True(t, apperr.IsKind(err, apperr.Persistence))
}
