package storage

import (
	"context"
	"io"
)

// Backend stores uploaded files and reports the path clients fetch them from
type Backend interface {
	// Save writes data under name and returns its public path
	Save(ctx context.Context, name string, data io.Reader, contentType string) (string, error)

	// Remove deletes the file behind a public path returned by Save.
	// Removing a missing file is not an error.
	Remove(ctx context.Context, publicPath string) error

	// Name identifies the backend in logs
	Name() string
}
