package categories

import (
	"context"

	"github.com/killallgit/podcaster-api/internal/models"
)

// CategoryRepository defines the data access interface for categories
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

// CategoryService defines the business logic interface for categories
type CategoryService interface {
	Create(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	// Resolve looks a category up by name, falling back to its slug
	Resolve(ctx context.Context, key string) (*models.Category, error)
}
