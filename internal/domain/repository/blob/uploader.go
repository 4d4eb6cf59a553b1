package blob

import (
	"context"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
)

// Uploader stores a local payload and returns a stable URL plus basic media
// metadata. Uploads fail independently of the document store; consistency
// comes from how the lifecycle usecases order their calls.
type Uploader interface {
	Upload(ctx context.Context, payload *dto.FilePayload) (entity.BlobUploadResult, error)
}
