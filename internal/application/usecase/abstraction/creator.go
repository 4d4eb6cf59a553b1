package abstraction

import (
	"context"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/model"
)

// Creator runs the publish saga: blob uploads, document insert, durability
// re-read and lifecycle event, with compensation on partial failure.
type Creator interface {
	Publish(ctx context.Context, input dto.PublishVideoInput) (*model.Video, error)
}
