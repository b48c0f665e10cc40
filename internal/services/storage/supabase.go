package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStorage keeps uploads in a Supabase Storage bucket
type SupabaseStorage struct {
	client  *storage_go.Client
	baseURL string
	bucket  string
}

// NewSupabaseStorage creates a backend for bucket on the project at baseURL
func NewSupabaseStorage(baseURL, key, bucket string) (*SupabaseStorage, error) {
	if baseURL == "" || key == "" {
		return nil, fmt.Errorf("supabase url and key are required")
	}
	if bucket == "" {
		bucket = "uploads"
	}
	baseURL = strings.TrimRight(baseURL, "/")
	return &SupabaseStorage{
		client:  storage_go.NewClient(baseURL+"/storage/v1", key, nil),
		baseURL: baseURL,
		bucket:  bucket,
	}, nil
}

func (s *SupabaseStorage) Name() string {
	return "supabase"
}

// Save uploads data and returns the object's public URL
func (s *SupabaseStorage) Save(ctx context.Context, name string, data io.Reader, contentType string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}

	options := storage_go.FileOptions{}
	if contentType != "" {
		options.ContentType = &contentType
	}
	if _, err := s.client.UploadFile(s.bucket, name, data, options); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}

	return s.publicURL(name), nil
}

// Remove deletes the object named by the last element of publicPath
func (s *SupabaseStorage) Remove(ctx context.Context, publicPath string) error {
	name, err := cleanName(path.Base(publicPath))
	if err != nil {
		return err
	}
	if _, err := s.client.RemoveFile(s.bucket, []string{name}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}

func (s *SupabaseStorage) publicURL(name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, name)
}
