package abstraction

import (
	"context"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
)

// Lister serves the catalog listing with search, sorting and pagination.
type Lister interface {
	ListVideos(ctx context.Context, query dto.ListVideosQuery) (*entity.VideoPage, error)
}
