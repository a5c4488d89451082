// Package storage wraps the object-storage provider. Uploads always
// produce an original plus a derived thumbnail; deletes are best-effort
// from the caller's point of view.
package storage

import (
	"context"
	"path"
	"strings"
)

// UploadResult describes a stored image artifact
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PublicID     string `json:"publicId"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Bytes        int64  `json:"bytes"`
}

// Store is the object-storage capability consumed by the workflow services
type Store interface {
	// UploadFromURL fetches the image at sourceURL, stores it under folder
	// and derives a thumbnail next to it.
	UploadFromURL(ctx context.Context, sourceURL, folder string) (*UploadResult, error)

	// Delete removes the artifact and its thumbnail. Callers treat failures
	// as non-fatal; an orphaned object is preferable to a blocked delete.
	Delete(ctx context.Context, publicID string) error
}

// ThumbKey derives the thumbnail object key from an original's key,
// e.g. "projects/p1/photos/a.jpg" -> "projects/p1/photos/thumbs/a.jpg"
func ThumbKey(key string) string {
	dir, file := path.Split(key)
	return dir + "thumbs/" + file
}

// SanitizeFolder turns an arbitrary name into a safe object-key prefix:
// lowercase alphanumerics and hyphens, no leading/trailing separators.
func SanitizeFolder(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, " ", "-")

	var result strings.Builder
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-' || char == '/' {
			result.WriteRune(char)
		}
	}

	return strings.Trim(result.String(), "-/")
}
