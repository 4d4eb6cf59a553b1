package minio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
	"vidtube/pkg/utils"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

// Upload sniffs the payload's content type, probes the media duration for mp4
// containers, then streams the payload into a uuid-keyed object. The returned
// URL is the stable reference stored on the video document.
func (u *Uploader) Upload(ctx context.Context, payload *dto.FilePayload) (entity.BlobUploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if payload == nil || payload.Size <= 0 {
		return entity.BlobUploadResult{}, fmt.Errorf("empty payload")
	}

	head := make([]byte, 3072)
	n, err := io.ReadFull(payload.Reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return entity.BlobUploadResult{}, fmt.Errorf("read payload head: %w", err)
	}
	contentType := mimetype.Detect(head[:n]).String()

	var duration float64
	if isMP4Family(contentType) {
		duration = utils.ProbeMP4Duration(payload.Reader, payload.Size)
	}

	if _, err := payload.Reader.Seek(0, io.SeekStart); err != nil {
		return entity.BlobUploadResult{}, fmt.Errorf("rewind payload: %w", err)
	}

	objectName := uuid.New().String() + utils.GetExtensionFromMimeType(contentType)

	_, err = u.client.MinioClient.PutObject(ctx, u.cfg.Bucket, objectName, payload.Reader, payload.Size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return entity.BlobUploadResult{}, fmt.Errorf("put object: %w", err)
	}

	return entity.BlobUploadResult{
		URL:         fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.client.PublicURL, "/"), u.cfg.Bucket, objectName),
		Duration:    duration,
		Size:        payload.Size,
		ContentType: contentType,
	}, nil
}

func isMP4Family(contentType string) bool {
	return strings.HasPrefix(contentType, "video/mp4") ||
		strings.HasPrefix(contentType, "video/quicktime")
}
