package usecase

import (
	"context"
	"strings"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/model"
	"vidtube/internal/domain/repository/blob"
	"vidtube/internal/domain/repository/broker"
	"vidtube/internal/domain/repository/database"
	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
)

// Creator runs the publish saga. The document and the blob stores are not
// transactionally linked, so each failed step compensates the blob mutations
// performed earlier in the same call.
type Creator struct {
	writer       database.Writer
	retriever    database.Retriever
	dbRemover    database.Remover
	blobUploader blob.Uploader
	blobRemover  blob.Remover
	publisher    broker.Publisher
}

func NewCreator(writer database.Writer, retriever database.Retriever, dbRemover database.Remover,
	blobUploader blob.Uploader, blobRemover blob.Remover, publisher broker.Publisher,
) *Creator {
	return &Creator{
		writer:       writer,
		retriever:    retriever,
		dbRemover:    dbRemover,
		blobUploader: blobUploader,
		blobRemover:  blobRemover,
		publisher:    publisher,
	}
}

func (c *Creator) Publish(ctx context.Context, input dto.PublishVideoInput) (*model.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if title == "" || description == "" {
		return nil, apperr.New(apperr.Validation, "title and description are required")
	}
	if input.Video == nil {
		return nil, apperr.New(apperr.Validation, "video file is required")
	}
	if input.Thumbnail == nil {
		return nil, apperr.New(apperr.Validation, "thumbnail file is required")
	}
	if input.Owner.IsZero() {
		return nil, apperr.New(apperr.Validation, "owner identity is required")
	}

	videoBlob, err := c.blobUploader.Upload(ctx, input.Video)
	if err != nil {
		return nil, apperr.Wrap(apperr.UpstreamUpload, "video upload failed", err)
	}

	thumbnailBlob, err := c.blobUploader.Upload(ctx, input.Thumbnail)
	if err != nil {
		c.compensateBlob(ctx, videoBlob.URL)

		return nil, apperr.Wrap(apperr.UpstreamUpload, "thumbnail upload failed", err)
	}

	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	id, err := c.writer.Insert(ctx, &model.Video{
		Title:       title,
		Description: description,
		VideoFile:   videoBlob.URL,
		Thumbnail:   thumbnailBlob.URL,
		Duration:    videoBlob.Duration,
		IsPublished: isPublished,
		Owner:       input.Owner,
	})
	if err != nil {
		c.compensateBlob(ctx, videoBlob.URL)
		c.compensateBlob(ctx, thumbnailBlob.URL)

		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while creating the video document", err)
	}

	// Re-read by id to confirm the document is durable before answering.
	created, err := c.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "something went wrong while reading back the video document", err)
	}

	if err := c.publisher.Publish(ctx, encodeEvent(EventVideoCreated, id.Hex())); err != nil {
		c.compensateBlob(ctx, videoBlob.URL)
		c.compensateBlob(ctx, thumbnailBlob.URL)
		if _, removeErr := c.dbRemover.Remove(ctx, id); removeErr != nil {
			logger.Error("failed to remove video document after event publish failed",
				"id", id.Hex(), "err", removeErr)
		}

		return nil, apperr.Wrap(apperr.Internal, "failed to publish video lifecycle event", err)
	}

	return created, nil
}

func (c *Creator) compensateBlob(ctx context.Context, url string) {
	if err := c.blobRemover.Remove(ctx, url); err != nil {
		logger.Error("failed to remove blob while compensating a failed publish", "url", url, "err", err)
	}
}
