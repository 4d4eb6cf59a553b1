package abstraction

import (
	"context"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/model"
)

// Editor applies partial edits and the publish toggle.
type Editor interface {
	Update(ctx context.Context, id string, input dto.UpdateVideoInput) (*model.Video, error)
	TogglePublish(ctx context.Context, id string) (*model.Video, error)
}
