package categories

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/killallgit/podcaster-api/internal/models"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	t.Run("derives slug", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewService(repo)

		repo.On("NameExists", mock.Anything, "True Crime").Return(false, nil)
		repo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
			return c.CategoryName == "True Crime" && c.Slug == "true-crime"
		})).Return(nil)

		category, err := service.Create(context.Background(), "  True Crime ")
		require.NoError(t, err)
		assert.Equal(t, "true-crime", category.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		service := NewService(new(MockCategoryRepository))
		_, err := service.Create(context.Background(), " ")
		assert.Equal(t, http.StatusBadRequest, apperrors.GetHTTPCode(err))
	})

	t.Run("existing name", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewService(repo)

		repo.On("NameExists", mock.Anything, "Tech").Return(true, nil)

		_, err := service.Create(context.Background(), "Tech")
		assert.Equal(t, http.StatusBadRequest, apperrors.GetHTTPCode(err))
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeAlreadyExists))
		repo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewService(repo)

		repo.On("NameExists", mock.Anything, "Tech").Return(false, nil)
		repo.On("CreateCategory", mock.Anything, mock.Anything).Return(stderrors.New("disk full"))

		_, err := service.Create(context.Background(), "Tech")
		assert.Equal(t, http.StatusInternalServerError, apperrors.GetHTTPCode(err))
	})
}

func TestService_GetCategoryByName(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := NewService(repo)
	tech := &models.Category{CategoryName: "Tech"}

	repo.On("GetCategoryByName", mock.Anything, "Tech").Return(tech, nil)
	repo.On("GetCategoryByName", mock.Anything, "Nope").Return(nil, ErrCategoryNotFound)

	got, err := service.GetCategoryByName(context.Background(), "Tech")
	require.NoError(t, err)
	assert.Equal(t, tech, got)

	_, err = service.GetCategoryByName(context.Background(), "Nope")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	appErr, _ := apperrors.As(err)
	assert.Equal(t, "No category found", appErr.Message)
}

func TestService_Resolve(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := NewService(repo)
	crime := &models.Category{CategoryName: "True Crime", Slug: "true-crime"}

	repo.On("GetCategoryByName", mock.Anything, "true-crime").Return(nil, ErrCategoryNotFound)
	repo.On("GetCategoryBySlug", mock.Anything, "true-crime").Return(crime, nil)
	repo.On("GetCategoryByName", mock.Anything, "Cooking").Return(nil, ErrCategoryNotFound)
	repo.On("GetCategoryBySlug", mock.Anything, "cooking").Return(nil, ErrCategoryNotFound)

	got, err := service.Resolve(context.Background(), "true-crime")
	require.NoError(t, err)
	assert.Equal(t, "True Crime", got.CategoryName)

	_, err = service.Resolve(context.Background(), "Cooking")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
