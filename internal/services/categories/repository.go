package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podcaster-api/internal/models"
	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when no category matches the lookup
var ErrCategoryNotFound = errors.New("category not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CategoryRepository {
	return &Repository{db: db}
}

// CreateCategory inserts a new category
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Omit("Podcasts").Create(category).Error; err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

// GetCategoryByName returns the oldest category with the given name
func (r *Repository) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return r.first(ctx, "category_name = ?", name)
}

// GetCategoryBySlug returns the oldest category with the given slug
func (r *Repository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.first(ctx, "slug = ?", slug)
}

// ListCategories returns all categories sorted by name
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).
		Order("category_name ASC").
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// NameExists reports whether any category already uses name
func (r *Repository) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("category_name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking category name: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) first(ctx context.Context, query string, arg any) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at ASC").
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return &category, nil
}
