package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotConfigured = errors.New("file storage not configured")

// Unconfigured stands in when the S3 environment is absent, so the rest
// of the app still boots for local development.
type Unconfigured struct{}

func (Unconfigured) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Delete(ctx context.Context, key string) error {
	return ErrNotConfigured
}
