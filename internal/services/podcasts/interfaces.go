package podcasts

import (
	"context"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/models"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	// Transaction runs fn against a repository bound to a single transaction
	Transaction(ctx context.Context, fn func(repo PodcastRepository) error) error

	// Create/Update/Delete
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	UpdatePodcast(ctx context.Context, podcast *models.Podcast, fields map[string]any) error
	DeletePodcast(ctx context.Context, id uuid.UUID) error

	// Read
	GetPodcastByID(ctx context.Context, id uuid.UUID) (*models.Podcast, error)
	TitleExists(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)

	// List, newest first, category populated
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)
	ListPodcastsByUser(ctx context.Context, userID uuid.UUID) ([]models.Podcast, error)
	ListPodcastsByCategoryName(ctx context.Context, name string) ([]models.Podcast, error)

	// Reference checks used inside the create transaction
	CategoryExists(ctx context.Context, id uuid.UUID) (bool, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CategoryFinder resolves a category name to a stored category
type CategoryFinder interface {
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
}

// FileRemover deletes a stored upload by its public path
type FileRemover interface {
	Remove(ctx context.Context, publicPath string) error
}

// PodcastService defines the business logic interface for podcast operations
type PodcastService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.Podcast, error)
	ListAll(ctx context.Context) ([]models.Podcast, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Podcast, error)
	Get(ctx context.Context, id string) (*models.Podcast, error)
	ListByCategoryName(ctx context.Context, name string) ([]models.Podcast, error)
	Edit(ctx context.Context, userID uuid.UUID, id string, input EditInput) (*models.Podcast, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

// CreateInput carries the fields of a new podcast. FrontImage and AudioFile
// are public paths of files already saved by the upload handler.
type CreateInput struct {
	Title           string
	Description     string
	CategoryName    string
	FrontImage      string
	AudioFile       string
	AudioMimeType   string
	AudioSize       int64
	DurationSeconds int
}

// EditInput carries the editable fields; nil leaves a field unchanged
type EditInput struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
}
