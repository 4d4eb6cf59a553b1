package abstraction

import (
	"context"

	"vidtube/internal/domain/model"
)

// Counter bumps the view counter through the store's atomic increment.
type Counter interface {
	IncrementViews(ctx context.Context, id string) (*model.Video, error)
}
