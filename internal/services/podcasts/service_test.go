package podcasts

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/models"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPodcastRepository is a mock implementation of PodcastRepository
type MockPodcastRepository struct {
	mock.Mock
}

func (m *MockPodcastRepository) Transaction(ctx context.Context, fn func(repo PodcastRepository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockPodcastRepository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	args := m.Called(ctx, podcast)
	return args.Error(0)
}

func (m *MockPodcastRepository) UpdatePodcast(ctx context.Context, podcast *models.Podcast, fields map[string]any) error {
	args := m.Called(ctx, podcast, fields)
	return args.Error(0)
}

func (m *MockPodcastRepository) DeletePodcast(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPodcastRepository) GetPodcastByID(ctx context.Context, id uuid.UUID) (*models.Podcast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Podcast), args.Error(1)
}

func (m *MockPodcastRepository) TitleExists(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPodcastRepository) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Podcast), args.Error(1)
}

func (m *MockPodcastRepository) ListPodcastsByUser(ctx context.Context, userID uuid.UUID) ([]models.Podcast, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Podcast), args.Error(1)
}

func (m *MockPodcastRepository) ListPodcastsByCategoryName(ctx context.Context, name string) ([]models.Podcast, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Podcast), args.Error(1)
}

func (m *MockPodcastRepository) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPodcastRepository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCategoryFinder struct {
	mock.Mock
}

func (m *MockCategoryFinder) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

type MockFileRemover struct {
	mock.Mock
}

func (m *MockFileRemover) Remove(ctx context.Context, publicPath string) error {
	args := m.Called(ctx, publicPath)
	return args.Error(0)
}

func validInput() CreateInput {
	return CreateInput{
		Title:        "Episode 1",
		Description:  "Pilot",
		CategoryName: "Tech",
		FrontImage:   "uploads/1-cover.png",
		AudioFile:    "uploads/1-audio.mp3",
	}
}

func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, status, appErr.GetHTTPCode())
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	category := &models.Category{Base: models.Base{ID: uuid.New()}, CategoryName: "Tech"}

	t.Run("stores podcast with resolved category", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		finder := new(MockCategoryFinder)
		service := NewService(repo, finder, nil)

		finder.On("GetCategoryByName", mock.Anything, "Tech").Return(category, nil)
		repo.On("TitleExists", mock.Anything, "Episode 1", uuid.Nil).Return(false, nil)
		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("CategoryExists", mock.Anything, category.ID).Return(true, nil)
		repo.On("UserExists", mock.Anything, userID).Return(true, nil)
		repo.On("CreatePodcast", mock.Anything, mock.MatchedBy(func(p *models.Podcast) bool {
			return p.Title == "Episode 1" && p.CategoryID == category.ID && p.UserID == userID
		})).Return(nil)

		podcast, err := service.Create(context.Background(), userID, validInput())

		require.NoError(t, err)
		assert.Equal(t, "Tech", podcast.Category.CategoryName)
		repo.AssertExpectations(t)
		finder.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(in *CreateInput)
			field  string
		}{
			{"title", func(in *CreateInput) { in.Title = "  " }, "title"},
			{"description", func(in *CreateInput) { in.Description = "" }, "description"},
			{"category", func(in *CreateInput) { in.CategoryName = "" }, "category"},
			{"front image", func(in *CreateInput) { in.FrontImage = "" }, "frontImage"},
			{"audio file", func(in *CreateInput) { in.AudioFile = "" }, "audioFile"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockPodcastRepository)
				service := NewService(repo, new(MockCategoryFinder), nil)

				input := validInput()
				tt.modify(&input)
				_, err := service.Create(context.Background(), userID, input)

				assertAppError(t, err, http.StatusBadRequest, "All fields are required")
				appErr, _ := apperrors.As(err)
				assert.Equal(t, []string{tt.field}, appErr.Details["fields"])
				repo.AssertNotCalled(t, "CreatePodcast", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("no user", func(t *testing.T) {
		service := NewService(new(MockPodcastRepository), new(MockCategoryFinder), nil)
		_, err := service.Create(context.Background(), uuid.Nil, validInput())
		assertAppError(t, err, http.StatusUnauthorized, "Unauthorized")
	})

	t.Run("unknown category", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		finder := new(MockCategoryFinder)
		service := NewService(repo, finder, nil)

		finder.On("GetCategoryByName", mock.Anything, "Tech").Return(nil, apperrors.NotFound("category", "Tech"))

		_, err := service.Create(context.Background(), userID, validInput())
		assertAppError(t, err, http.StatusBadRequest, "No category found")
		repo.AssertNotCalled(t, "CreatePodcast", mock.Anything, mock.Anything)
	})

	t.Run("duplicate title caught by pre-check", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		finder := new(MockCategoryFinder)
		service := NewService(repo, finder, nil)

		finder.On("GetCategoryByName", mock.Anything, "Tech").Return(category, nil)
		repo.On("TitleExists", mock.Anything, "Episode 1", uuid.Nil).Return(true, nil)

		_, err := service.Create(context.Background(), userID, validInput())
		assertAppError(t, err, http.StatusBadRequest, "A podcast with this title already exists.")
		repo.AssertNotCalled(t, "CreatePodcast", mock.Anything, mock.Anything)
	})

	t.Run("duplicate title caught by unique index", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		finder := new(MockCategoryFinder)
		service := NewService(repo, finder, nil)

		finder.On("GetCategoryByName", mock.Anything, "Tech").Return(category, nil)
		repo.On("TitleExists", mock.Anything, "Episode 1", uuid.Nil).Return(false, nil)
		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("CategoryExists", mock.Anything, category.ID).Return(true, nil)
		repo.On("UserExists", mock.Anything, userID).Return(true, nil)
		repo.On("CreatePodcast", mock.Anything, mock.Anything).Return(ErrDuplicateTitle)

		_, err := service.Create(context.Background(), userID, validInput())
		assertAppError(t, err, http.StatusBadRequest, "A podcast with this title already exists.")
	})

	t.Run("category removed before insert", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		finder := new(MockCategoryFinder)
		service := NewService(repo, finder, nil)

		finder.On("GetCategoryByName", mock.Anything, "Tech").Return(category, nil)
		repo.On("TitleExists", mock.Anything, "Episode 1", uuid.Nil).Return(false, nil)
		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("CategoryExists", mock.Anything, category.ID).Return(false, nil)

		_, err := service.Create(context.Background(), userID, validInput())
		assertAppError(t, err, http.StatusBadRequest, "No category found")
		repo.AssertNotCalled(t, "CreatePodcast", mock.Anything, mock.Anything)
	})

	t.Run("persistence failure", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		finder := new(MockCategoryFinder)
		service := NewService(repo, finder, nil)

		finder.On("GetCategoryByName", mock.Anything, "Tech").Return(category, nil)
		repo.On("TitleExists", mock.Anything, "Episode 1", uuid.Nil).Return(false, nil)
		repo.On("Transaction", mock.Anything).Return(stderrors.New("database is locked"))

		_, err := service.Create(context.Background(), userID, validInput())
		assertAppError(t, err, http.StatusInternalServerError, "")
	})
}

func TestService_Get(t *testing.T) {
	t.Run("malformed id is not found", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)

		_, err := service.Get(context.Background(), "not-a-uuid")
		assertAppError(t, err, http.StatusNotFound, "Podcast not found")
		repo.AssertNotCalled(t, "GetPodcastByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)
		id := uuid.New()

		repo.On("GetPodcastByID", mock.Anything, id).Return(nil, ErrPodcastNotFound)

		_, err := service.Get(context.Background(), id.String())
		assertAppError(t, err, http.StatusNotFound, "Podcast not found")
	})

	t.Run("found", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)
		id := uuid.New()
		expected := &models.Podcast{Base: models.Base{ID: id}, Title: "Episode 1"}

		repo.On("GetPodcastByID", mock.Anything, id).Return(expected, nil)

		podcast, err := service.Get(context.Background(), id.String())
		require.NoError(t, err)
		assert.Equal(t, expected, podcast)
	})
}

func TestService_Lists(t *testing.T) {
	userID := uuid.New()
	list := []models.Podcast{{Title: "b"}, {Title: "a"}}

	repo := new(MockPodcastRepository)
	service := NewService(repo, nil, nil)

	repo.On("ListPodcasts", mock.Anything).Return(list, nil)
	repo.On("ListPodcastsByUser", mock.Anything, userID).Return(list[:1], nil)
	repo.On("ListPodcastsByCategoryName", mock.Anything, "Tech").Return(list[1:], nil)

	all, err := service.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := service.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	byCategory, err := service.ListByCategoryName(context.Background(), " Tech ")
	require.NoError(t, err)
	assert.Equal(t, "a", byCategory[0].Title)

	_, err = service.ListByUser(context.Background(), uuid.Nil)
	assertAppError(t, err, http.StatusUnauthorized, "Unauthorized")

	failing := new(MockPodcastRepository)
	failing.On("ListPodcasts", mock.Anything).Return(nil, stderrors.New("boom"))
	_, err = NewService(failing, nil, nil).ListAll(context.Background())
	assertAppError(t, err, http.StatusInternalServerError, "")
}

func TestService_Edit(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	title := "New title"
	description := "New description"

	existing := func() *models.Podcast {
		return &models.Podcast{Base: models.Base{ID: id}, Title: "Old", Description: "Old", UserID: owner}
	}

	t.Run("owner updates title and description", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)
		updated := existing()
		updated.Title = title
		updated.Description = description

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(existing(), nil).Once()
		repo.On("TitleExists", mock.Anything, title, id).Return(false, nil)
		repo.On("UpdatePodcast", mock.Anything, mock.Anything, map[string]any{
			"title":       title,
			"description": description,
		}).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(updated, nil).Once()

		podcast, err := service.Edit(context.Background(), owner, id.String(), EditInput{Title: &title, Description: &description})
		require.NoError(t, err)
		assert.Equal(t, title, podcast.Title)
		repo.AssertExpectations(t)
	})

	t.Run("description only keeps title", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(existing(), nil)
		repo.On("UpdatePodcast", mock.Anything, mock.Anything, map[string]any{"description": description}).Return(nil)

		_, err := service.Edit(context.Background(), owner, id.String(), EditInput{Description: &description})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "TitleExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(existing(), nil)

		_, err := service.Edit(context.Background(), uuid.New(), id.String(), EditInput{Title: &title})
		assertAppError(t, err, http.StatusForbidden, "You are not authorized to edit this podcast")
		repo.AssertNotCalled(t, "UpdatePodcast", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(nil, ErrPodcastNotFound)

		_, err := service.Edit(context.Background(), owner, id.String(), EditInput{Title: &title})
		assertAppError(t, err, http.StatusNotFound, "Podcast not found")
	})

	t.Run("nothing to update", func(t *testing.T) {
		service := NewService(new(MockPodcastRepository), nil, nil)
		_, err := service.Edit(context.Background(), owner, id.String(), EditInput{})
		assertAppError(t, err, http.StatusBadRequest, "")
	})

	t.Run("blank fields are rejected", func(t *testing.T) {
		blank := "   "
		tests := []struct {
			name    string
			input   EditInput
			message string
		}{
			{"title", EditInput{Title: &blank}, "Title cannot be empty"},
			{"description", EditInput{Description: &blank}, "Description cannot be empty"},
			{"description with a valid title", EditInput{Title: &title, Description: &blank}, "Description cannot be empty"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockPodcastRepository)
				service := NewService(repo, nil, nil)

				_, err := service.Edit(context.Background(), owner, id.String(), tt.input)
				assertAppError(t, err, http.StatusBadRequest, tt.message)
				repo.AssertNotCalled(t, "UpdatePodcast", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(existing(), nil)
		repo.On("TitleExists", mock.Anything, title, id).Return(true, nil)

		_, err := service.Edit(context.Background(), owner, id.String(), EditInput{Title: &title})
		assertAppError(t, err, http.StatusBadRequest, "A podcast with this title already exists.")
	})

	t.Run("no user", func(t *testing.T) {
		service := NewService(new(MockPodcastRepository), nil, nil)
		_, err := service.Edit(context.Background(), uuid.Nil, id.String(), EditInput{Title: &title})
		assertAppError(t, err, http.StatusUnauthorized, "Unauthorized")
	})
}

func TestService_Delete(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	existing := &models.Podcast{
		Base:       models.Base{ID: id},
		UserID:     owner,
		FrontImage: "uploads/1-cover.png",
		AudioFile:  "uploads/1-audio.mp3",
	}

	t.Run("owner deletes and files are removed", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		files := new(MockFileRemover)
		service := NewService(repo, nil, files)

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(existing, nil)
		repo.On("DeletePodcast", mock.Anything, id).Return(nil)
		files.On("Remove", mock.Anything, "uploads/1-cover.png").Return(nil)
		files.On("Remove", mock.Anything, "uploads/1-audio.mp3").Return(stderrors.New("gone already"))

		require.NoError(t, service.Delete(context.Background(), owner, id.String()))
		repo.AssertExpectations(t)
		files.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		files := new(MockFileRemover)
		service := NewService(repo, nil, files)

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(existing, nil)

		err := service.Delete(context.Background(), uuid.New(), id.String())
		assertAppError(t, err, http.StatusForbidden, "You are not authorized to delete this podcast")
		repo.AssertNotCalled(t, "DeletePodcast", mock.Anything, mock.Anything)
		files.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("already deleted", func(t *testing.T) {
		repo := new(MockPodcastRepository)
		service := NewService(repo, nil, nil)

		repo.On("Transaction", mock.Anything).Return(nil)
		repo.On("GetPodcastByID", mock.Anything, id).Return(nil, ErrPodcastNotFound)

		err := service.Delete(context.Background(), owner, id.String())
		assertAppError(t, err, http.StatusNotFound, "Podcast not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		service := NewService(new(MockPodcastRepository), nil, nil)
		err := service.Delete(context.Background(), owner, "123")
		assertAppError(t, err, http.StatusNotFound, "Podcast not found")
	})
}
