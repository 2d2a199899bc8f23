package ports

import (
	"context"
	"io"
)

// AvatarStorage stores an uploaded avatar and returns its public URL.
type AvatarStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
