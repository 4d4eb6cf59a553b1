package entity

// BlobUploadResult is what the blob store hands back after a successful
// upload. Duration is in seconds and zero when the payload carries no movie
// header (images, unknown containers).
type BlobUploadResult struct {
	URL         string  `json:"url"`
	Duration    float64 `json:"duration"`
	Size        int64   `json:"size"`
	ContentType string  `json:"contentType"`
}
