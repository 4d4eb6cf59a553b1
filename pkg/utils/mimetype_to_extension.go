package utils

import "strings"

// mimeTypeToExtension maps the media MIME types the catalog accepts to their
// typical file extensions, used when building blob object keys.
var mimeTypeToExtension = map[string]string{
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
	"video/avi":                ".avi",
	"video/mpeg":               ".mpeg",
	"video/mp4":                ".mp4",
	"video/quicktime":          ".mov",
	"video/ogg":                ".ogv",
	"video/webm":               ".webm",
	"video/x-flv":              ".flv",
	"video/x-matroska":         ".mkv",
	"video/x-ms-wmv":           ".wmv",
	"application/octet-stream": ".bin",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME
// type, defaulting to ".bin" when the type is unknown.
func GetExtensionFromMimeType(mimeType string) string {
	// Drop parameters if present (e.g. "video/mp4; codecs=avc1").
	cleaned := strings.ToLower(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[strings.TrimSpace(cleaned)]; ok {
		return ext
	}

	return ".bin"
}
