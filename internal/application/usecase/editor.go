package usecase

import (
	"context"
	"errors"
	"strings"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/model"
	"vidtube/internal/domain/repository/blob"
	"vidtube/internal/domain/repository/database"
	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
)

// Editor applies partial edits and the publish toggle. A thumbnail replace
// uploads the new blob before touching the document, so a failed upload never
// leaves the document pointing at a deleted blob; the old blob is removed
// last, best-effort.
type Editor struct {
	retriever    database.Retriever
	updater      database.Updater
	blobUploader blob.Uploader
	blobRemover  blob.Remover
}

func NewEditor(retriever database.Retriever, updater database.Updater,
	blobUploader blob.Uploader, blobRemover blob.Remover,
) *Editor {
	return &Editor{
		retriever:    retriever,
		updater:      updater,
		blobUploader: blobUploader,
		blobRemover:  blobRemover,
	}
}

func (e *Editor) Update(ctx context.Context, id string, input dto.UpdateVideoInput) (*model.Video, error) {
	videoID, err := parseVideoID(id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if title == "" && description == "" && input.Thumbnail == nil {
		return nil, apperr.New(apperr.Validation, "at least one field is required to update the video")
	}

	video, err := e.retriever.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, database.ErrNoDocument) {
			return nil, apperr.NotFoundf("video with the id %s is not found", id)
		}

		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while loading the video", err)
	}

	fields := map[string]any{}
	if title != "" {
		fields["title"] = title
	}
	if description != "" {
		fields["description"] = description
	}

	newThumbnail := ""
	oldThumbnail := ""
	if input.Thumbnail != nil {
		thumbnailBlob, err := e.blobUploader.Upload(ctx, input.Thumbnail)
		if err != nil {
			return nil, apperr.Wrap(apperr.UpstreamUpload, "error while uploading the new thumbnail", err)
		}

		fields["thumbnail"] = thumbnailBlob.URL
		newThumbnail = thumbnailBlob.URL
		oldThumbnail = video.Thumbnail
	}

	updated, err := e.updater.UpdateFields(ctx, videoID, fields)
	if err != nil {
		// Persist failed: the new blob is unreferenced, clean it up.
		if newThumbnail != "" {
			if removeErr := e.blobRemover.Remove(ctx, newThumbnail); removeErr != nil {
				logger.Error("failed to remove new thumbnail after update failed",
					"url", newThumbnail, "err", removeErr)
			}
		}

		if errors.Is(err, database.ErrNoDocument) {
			return nil, apperr.NotFoundf("video with the id %s is not found", id)
		}

		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while updating the video", err)
	}

	if oldThumbnail != "" {
		// The document now references the new blob; losing this delete
		// orphans a blob but never dangles a reference.
		if err := e.blobRemover.Remove(ctx, oldThumbnail); err != nil {
			logger.Warn("failed to remove replaced thumbnail blob", "url", oldThumbnail, "err", err)
		}
	}

	return updated, nil
}

// TogglePublish flips isPublished without re-running full-document
// validation. Two consecutive toggles restore the original value.
func (e *Editor) TogglePublish(ctx context.Context, id string) (*model.Video, error) {
	videoID, err := parseVideoID(id)
	if err != nil {
		return nil, err
	}

	video, err := e.retriever.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, database.ErrNoDocument) {
			return nil, apperr.NotFoundf("video with the id %s does not exist", id)
		}

		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while loading the video", err)
	}

	updated, err := e.updater.UpdateFields(ctx, videoID, map[string]any{
		"isPublished": !video.IsPublished,
	})
	if err != nil {
		if errors.Is(err, database.ErrNoDocument) {
			return nil, apperr.NotFoundf("video with the id %s does not exist", id)
		}

		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while toggling the publish status", err)
	}

	return updated, nil
}
