package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FilesystemStorage keeps uploads in one flat local directory
type FilesystemStorage struct {
	basePath     string
	publicPrefix string
}

// DefaultPublicPrefix is used when no public prefix is configured
const DefaultPublicPrefix = "uploads"

// NewFilesystemStorage creates the upload directory if needed. Saved files
// are reported as <publicPrefix>/<name>.
func NewFilesystemStorage(basePath, publicPrefix string) (*FilesystemStorage, error) {
	publicPrefix = strings.Trim(publicPrefix, "/")
	if publicPrefix == "" {
		publicPrefix = DefaultPublicPrefix
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FilesystemStorage{
		basePath:     basePath,
		publicPrefix: publicPrefix,
	}, nil
}

// Dir returns the directory files are written to
func (fs *FilesystemStorage) Dir() string {
	return fs.basePath
}

// Prefix returns the public path prefix, without slashes
func (fs *FilesystemStorage) Prefix() string {
	return fs.publicPrefix
}

func (fs *FilesystemStorage) Name() string {
	return "filesystem"
}

// Save writes data to <basePath>/<name>
func (fs *FilesystemStorage) Save(ctx context.Context, name string, data io.Reader, contentType string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(fs.basePath, name)

	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(fs.publicPrefix, name), nil
}

// Remove deletes the file named by the last element of publicPath
func (fs *FilesystemStorage) Remove(ctx context.Context, publicPath string) error {
	name, err := cleanName(path.Base(publicPath))
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(fs.basePath, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// cleanName rejects names that would escape the flat upload directory
func cleanName(name string) (string, error) {
	base := filepath.Base(filepath.Clean(name))
	if base == "." || base == ".." || base == string(filepath.Separator) || base != name {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return base, nil
}
