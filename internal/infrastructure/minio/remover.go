package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

type Remover struct {
	client *Client
	cfg    *RemoverConfig
}

func NewRemover(client *Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		client: client,
		cfg:    cfg,
	}
}

// Remove deletes the object a stored blob URL points at. URLs that were not
// issued by this store's public base are rejected.
func (r *Remover) Remove(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	bucket, objectName, err := r.parseURL(url)
	if err != nil {
		return err
	}

	return r.client.MinioClient.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

func (r *Remover) parseURL(url string) (string, string, error) {
	base := strings.TrimSuffix(r.client.PublicURL, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", "", fmt.Errorf("blob url %q is outside this store", url)
	}

	rest := strings.TrimPrefix(url, base)
	bucket, objectName, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || objectName == "" {
		return "", "", fmt.Errorf("blob url %q has no object key", url)
	}

	return bucket, objectName, nil
}
