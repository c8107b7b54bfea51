package images

import (
	"context"
	"io"
	"regexp"
)

// UploadOptions are passed through to the image host on every upload.
type UploadOptions struct {
	Folder  string
	Quality string
}

// UploadResult describes a stored asset.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// Store is the external image hosting capability. Implementations must
// report failures as errors and never return an empty SecureURL on success.
type Store interface {
	Upload(ctx context.Context, file io.Reader, opts UploadOptions) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// versioned delivery path: .../v1712345678/<folder>/<id>.<ext>
var publicIDPattern = regexp.MustCompile(`/v\d+/(.+)\.[a-zA-Z0-9]+$`)

// PublicIDFromURL extracts the asset identifier from a stored image URL.
// The second return value is false when the URL does not follow the
// versioned delivery layout.
func PublicIDFromURL(url string) (string, bool) {
	m := publicIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}
