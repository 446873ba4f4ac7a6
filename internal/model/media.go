package model

import (
	"context"
	"io"
)

// MediaRef points at an externally stored artifact.
type MediaRef struct {
	ID  string
	URL string
}

// FileUpload is an inbound file attachment.
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
	Data        io.Reader
}

// MediaStorage stores and removes media artifacts.
type MediaStorage interface {
	Upload(ctx context.Context, folder string, file FileUpload) (MediaRef, error)
	Delete(ctx context.Context, id string) error
}
