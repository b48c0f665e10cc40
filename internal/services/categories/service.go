package categories

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gosimple/slug"
	"github.com/killallgit/podcaster-api/internal/models"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
)

type Service struct {
	repository CategoryRepository
}

func NewService(repository CategoryRepository) CategoryService {
	return &Service{repository: repository}
}

// Create adds a category. Names are checked for reuse here only; the
// table itself allows duplicates.
func (s *Service) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.MissingFieldError("Category name is required", "categoryName")
	}

	exists, err := s.repository.NameExists(ctx, name)
	if err != nil {
		return nil, apperrors.DatabaseError("category check", err)
	}
	if exists {
		return nil, apperrors.AlreadyExists("Category already exists")
	}

	category := &models.Category{
		CategoryName: name,
		Slug:         slug.Make(name),
	}
	if err := s.repository.CreateCategory(ctx, category); err != nil {
		return nil, apperrors.DatabaseError("create category", err)
	}

	log.Printf("[INFO] Category %q created (slug %s)", category.CategoryName, category.Slug)
	return category, nil
}

// List returns every category sorted by name
func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repository.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("list categories", err)
	}
	return categories, nil
}

// GetCategoryByName returns the category stored under name
func (s *Service) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.repository.GetCategoryByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, translate(err, name)
	}
	return category, nil
}

// Resolve accepts either the display name or the slug of a category
func (s *Service) Resolve(ctx context.Context, key string) (*models.Category, error) {
	key = strings.TrimSpace(key)
	category, err := s.repository.GetCategoryByName(ctx, key)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return nil, translate(err, key)
	}

	category, err = s.repository.GetCategoryBySlug(ctx, slug.Make(key))
	if err != nil {
		return nil, translate(err, key)
	}
	return category, nil
}

func translate(err error, key string) error {
	if errors.Is(err, ErrCategoryNotFound) {
		return apperrors.NotFound("category", key).WithMessage("No category found")
	}
	return apperrors.DatabaseError("get category", err)
}
