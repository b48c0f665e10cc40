package podcasts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/models"
	"gorm.io/gorm"
)

// ErrPodcastNotFound is returned when no podcast matches the lookup
var ErrPodcastNotFound = errors.New("podcast not found")

// ErrDuplicateTitle is returned when the unique title index rejects a write
var ErrDuplicateTitle = errors.New("podcast title already exists")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PodcastRepository {
	return &Repository{db: db}
}

// Transaction runs fn inside a database transaction
func (r *Repository) Transaction(ctx context.Context, fn func(repo PodcastRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// CreatePodcast inserts a new podcast
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

// UpdatePodcast writes the given columns of an existing podcast
func (r *Repository) UpdatePodcast(ctx context.Context, podcast *models.Podcast, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(podcast).Omit("Category").Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("updating podcast: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPodcastNotFound
	}
	return nil
}

// DeletePodcast removes a podcast row
func (r *Repository) DeletePodcast(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Podcast{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting podcast: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPodcastNotFound
	}
	return nil
}

// GetPodcastByID retrieves a podcast with its category
func (r *Repository) GetPodcastByID(ctx context.Context, id uuid.UUID) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// TitleExists reports whether another podcast already uses title
func (r *Repository) TitleExists(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("title = ?", title)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking podcast title: %w", err)
	}
	return count > 0, nil
}

// ListPodcasts returns every podcast, newest first
func (r *Repository) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	podcasts := []models.Podcast{}
	if err := r.listQuery(ctx).Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("listing podcasts: %w", err)
	}
	return podcasts, nil
}

// ListPodcastsByUser returns the podcasts owned by userID, newest first
func (r *Repository) ListPodcastsByUser(ctx context.Context, userID uuid.UUID) ([]models.Podcast, error) {
	podcasts := []models.Podcast{}
	if err := r.listQuery(ctx).
		Where("podcasts.user_id = ?", userID).
		Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("listing user podcasts: %w", err)
	}
	return podcasts, nil
}

// ListPodcastsByCategoryName returns the podcasts of every category named
// name, flattened into one newest-first list
func (r *Repository) ListPodcastsByCategoryName(ctx context.Context, name string) ([]models.Podcast, error) {
	podcasts := []models.Podcast{}
	if err := r.listQuery(ctx).
		Joins("JOIN categories ON categories.id = podcasts.category_id").
		Where("categories.category_name = ?", name).
		Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("listing category podcasts: %w", err)
	}
	return podcasts, nil
}

// CategoryExists reports whether a category row with id exists
func (r *Repository) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.Category{}, id)
}

// UserExists reports whether a user row with id exists
func (r *Repository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.User{}, id)
}

func (r *Repository) exists(ctx context.Context, model any, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking reference: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Order("podcasts.created_at DESC")
}
