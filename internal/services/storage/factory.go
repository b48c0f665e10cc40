package storage

import (
	"fmt"

	"github.com/killallgit/podcaster-api/pkg/config"
)

// New builds the backend selected by uploads.backend
func New(uploads config.UploadsConfig, supabase config.SupabaseConfig) (Backend, error) {
	switch uploads.Backend {
	case "", "filesystem":
		fs, err := NewFilesystemStorage(uploads.Dir, uploads.PublicPrefix)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case "supabase":
		s, err := NewSupabaseStorage(supabase.URL, supabase.Key, supabase.Bucket)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", uploads.Backend)
	}
}
