package usecase

import (
	"context"
	"errors"

	"vidtube/internal/domain/repository/blob"
	"vidtube/internal/domain/repository/broker"
	"vidtube/internal/domain/repository/database"
	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
)

// Deleter removes a video and its blobs. The video blob goes first and aborts
// the operation on failure, leaving the document intact; once blobs are gone a
// failing document delete leaves a dangling reference, an accepted and logged
// inconsistency window (there is no cross-store transaction to close it).
type Deleter struct {
	retriever   database.Retriever
	dbRemover   database.Remover
	blobRemover blob.Remover
	publisher   broker.Publisher
}

func NewDeleter(retriever database.Retriever, dbRemover database.Remover,
	blobRemover blob.Remover, publisher broker.Publisher,
) *Deleter {
	return &Deleter{
		retriever:   retriever,
		dbRemover:   dbRemover,
		blobRemover: blobRemover,
		publisher:   publisher,
	}
}

func (d *Deleter) Delete(ctx context.Context, id string) error {
	videoID, err := parseVideoID(id)
	if err != nil {
		return err
	}

	video, err := d.retriever.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, database.ErrNoDocument) {
			return apperr.NotFoundf("video with the id %s is not found", id)
		}

		return apperr.Wrap(apperr.Persistence, "something went wrong while loading the video", err)
	}

	if err := d.blobRemover.Remove(ctx, video.VideoFile); err != nil {
		return apperr.Wrap(apperr.UpstreamDelete, "error while deleting the video file from the blob store", err)
	}

	if err := d.blobRemover.Remove(ctx, video.Thumbnail); err != nil {
		logger.Warn("failed to remove thumbnail blob during delete", "url", video.Thumbnail, "err", err)
	}

	removed, err := d.dbRemover.Remove(ctx, videoID)
	if err != nil || !removed {
		logger.Error("video document survived after its blobs were removed", "id", id, "err", err)

		return apperr.Wrap(apperr.Persistence, "error while deleting the video document", err)
	}

	if err := d.publisher.Publish(ctx, encodeEvent(EventVideoDeleted, id)); err != nil {
		logger.Warn("failed to publish delete lifecycle event", "id", id, "err", err)
	}

	return nil
}
