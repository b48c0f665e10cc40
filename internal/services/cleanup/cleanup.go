package cleanup

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/killallgit/podcaster-api/internal/models"
	"gorm.io/gorm"
)

// Service removes uploaded files that no podcast references. A crash
// between saving an upload and committing its podcast leaves such files.
type Service struct {
	db            *gorm.DB
	dir           string
	maxAge        time.Duration
	sweepInterval time.Duration
	now           func() time.Time
	cancel        context.CancelFunc
	done          chan struct{}
}

// NewService creates a sweeper for the flat upload directory dir. Files
// younger than maxAge are left alone so in-flight uploads survive.
func NewService(db *gorm.DB, dir string, maxAge, sweepInterval time.Duration) *Service {
	return &Service{
		db:            db,
		dir:           dir,
		maxAge:        maxAge,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

// Start sweeps once and then every sweep interval until ctx ends or Stop
// is called
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	if _, err := s.Sweep(ctx); err != nil {
		log.Printf("[ERROR] Upload sweep failed: %v", err)
	}

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := s.Sweep(ctx); err != nil {
					log.Printf("[ERROR] Upload sweep failed: %v", err)
				}
			case <-ctx.Done():
				log.Println("[INFO] Upload sweeper stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Upload sweeper started (interval: %v, max age: %v)", s.sweepInterval, s.maxAge)
}

// Stop stops the sweeper and waits for a running sweep to finish
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// Sweep removes unreferenced files older than the max age and returns
// their names
func (s *Service) Sweep(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading upload directory: %w", err)
	}

	referenced, err := s.referencedNames(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-s.maxAge)
	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		full := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARN] Failed to remove orphaned upload %s: %v", full, err)
			continue
		}
		log.Printf("[DEBUG] Removed orphaned upload: %s", entry.Name())
		removed = append(removed, entry.Name())
	}

	if len(removed) > 0 {
		log.Printf("[INFO] Removed %d orphaned uploads", len(removed))
	}
	return removed, nil
}

// referencedNames returns the file names behind every stored media path
func (s *Service) referencedNames(ctx context.Context) (map[string]bool, error) {
	var rows []struct {
		FrontImage string
		AudioFile  string
	}
	if err := s.db.WithContext(ctx).Model(&models.Podcast{}).
		Select("front_image", "audio_file").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing podcast media: %w", err)
	}

	names := make(map[string]bool, len(rows)*2)
	for _, row := range rows {
		for _, p := range []string{row.FrontImage, row.AudioFile} {
			if p != "" {
				names[path.Base(p)] = true
			}
		}
	}
	return names, nil
}
