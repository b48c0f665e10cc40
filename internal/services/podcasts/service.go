package podcasts

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/models"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
)

// Client-facing messages
const (
	msgAllFieldsRequired = "All fields are required"
	msgUnauthorized      = "Unauthorized"
	msgNoCategory        = "No category found"
	msgDuplicateTitle    = "A podcast with this title already exists."
	msgNotFound          = "Podcast not found"
	msgNothingToUpdate   = "Title or description is required"
	msgEditForbidden     = "You are not authorized to edit this podcast"
	msgDeleteForbidden   = "You are not authorized to delete this podcast"
)

type Service struct {
	repository PodcastRepository
	categories CategoryFinder
	files      FileRemover
}

// NewService creates a podcast service. files may be nil, in which case
// deleted podcasts leave their uploads in place.
func NewService(repository PodcastRepository, categories CategoryFinder, files FileRemover) PodcastService {
	return &Service{
		repository: repository,
		categories: categories,
		files:      files,
	}
}

// Create validates input and stores a new podcast owned by userID
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.Podcast, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.CategoryName = strings.TrimSpace(input.CategoryName)

	if missing := input.missingFields(); len(missing) > 0 {
		return nil, apperrors.MissingFieldError(msgAllFieldsRequired, missing...)
	}
	if userID == uuid.Nil {
		return nil, apperrors.Unauthorized(msgUnauthorized)
	}

	category, err := s.categories.GetCategoryByName(ctx, input.CategoryName)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.ValidationError(msgNoCategory)
		}
		return nil, apperrors.DatabaseError("category lookup", err)
	}

	exists, err := s.repository.TitleExists(ctx, input.Title, uuid.Nil)
	if err != nil {
		return nil, apperrors.DatabaseError("title check", err)
	}
	if exists {
		return nil, apperrors.AlreadyExists(msgDuplicateTitle)
	}

	podcast := &models.Podcast{
		Title:           input.Title,
		Description:     input.Description,
		CategoryID:      category.ID,
		UserID:          userID,
		FrontImage:      input.FrontImage,
		AudioFile:       input.AudioFile,
		AudioMimeType:   input.AudioMimeType,
		AudioSize:       input.AudioSize,
		DurationSeconds: input.DurationSeconds,
	}

	err = s.repository.Transaction(ctx, func(repo PodcastRepository) error {
		// The category or user may have gone away since the lookup above
		ok, err := repo.CategoryExists(ctx, category.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ValidationError(msgNoCategory)
		}
		ok, err = repo.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Unauthorized(msgUnauthorized)
		}
		return repo.CreatePodcast(ctx, podcast)
	})
	if err != nil {
		return nil, translate(err, "create")
	}

	podcast.Category = category
	log.Printf("[INFO] Podcast %s created by user %s in category %q", podcast.ID, userID, category.CategoryName)
	return podcast, nil
}

// ListAll returns every podcast, newest first
func (s *Service) ListAll(ctx context.Context) ([]models.Podcast, error) {
	podcasts, err := s.repository.ListPodcasts(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("list", err)
	}
	return podcasts, nil
}

// ListByUser returns the podcasts owned by userID, newest first
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Podcast, error) {
	if userID == uuid.Nil {
		return nil, apperrors.Unauthorized(msgUnauthorized)
	}
	podcasts, err := s.repository.ListPodcastsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("list", err)
	}
	return podcasts, nil
}

// Get returns a single podcast. Malformed ids are reported as not found.
func (s *Service) Get(ctx context.Context, id string) (*models.Podcast, error) {
	podcastID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("podcast", id).WithMessage(msgNotFound)
	}
	podcast, err := s.repository.GetPodcastByID(ctx, podcastID)
	if err != nil {
		return nil, translate(err, "get")
	}
	return podcast, nil
}

// ListByCategoryName returns podcasts across every category called name
func (s *Service) ListByCategoryName(ctx context.Context, name string) ([]models.Podcast, error) {
	podcasts, err := s.repository.ListPodcastsByCategoryName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, apperrors.DatabaseError("list", err)
	}
	return podcasts, nil
}

// Edit updates the title and/or description of a podcast owned by userID.
// Category and media are fixed after creation.
func (s *Service) Edit(ctx context.Context, userID uuid.UUID, id string, input EditInput) (*models.Podcast, error) {
	if userID == uuid.Nil {
		return nil, apperrors.Unauthorized(msgUnauthorized)
	}
	podcastID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("podcast", id).WithMessage(msgNotFound)
	}

	fields := map[string]any{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.ValidationError("Title cannot be empty")
		}
		fields["title"] = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, apperrors.ValidationError("Description cannot be empty")
		}
		fields["description"] = description
	}
	if len(fields) == 0 {
		return nil, apperrors.ValidationError(msgNothingToUpdate)
	}

	var updated *models.Podcast
	err = s.repository.Transaction(ctx, func(repo PodcastRepository) error {
		podcast, err := repo.GetPodcastByID(ctx, podcastID)
		if err != nil {
			return err
		}
		if !podcast.OwnedBy(userID) {
			return apperrors.Forbidden(msgEditForbidden)
		}
		if title, ok := fields["title"].(string); ok && title != podcast.Title {
			taken, err := repo.TitleExists(ctx, title, podcast.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.AlreadyExists(msgDuplicateTitle)
			}
		}
		if err := repo.UpdatePodcast(ctx, podcast, fields); err != nil {
			return err
		}
		updated, err = repo.GetPodcastByID(ctx, podcastID)
		return err
	})
	if err != nil {
		return nil, translate(err, "edit")
	}

	log.Printf("[INFO] Podcast %s edited by user %s", podcastID, userID)
	return updated, nil
}

// Delete removes a podcast owned by userID and then its stored files
func (s *Service) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	if userID == uuid.Nil {
		return apperrors.Unauthorized(msgUnauthorized)
	}
	podcastID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NotFound("podcast", id).WithMessage(msgNotFound)
	}

	var deleted *models.Podcast
	err = s.repository.Transaction(ctx, func(repo PodcastRepository) error {
		podcast, err := repo.GetPodcastByID(ctx, podcastID)
		if err != nil {
			return err
		}
		if !podcast.OwnedBy(userID) {
			return apperrors.Forbidden(msgDeleteForbidden)
		}
		if err := repo.DeletePodcast(ctx, podcastID); err != nil {
			return err
		}
		deleted = podcast
		return nil
	})
	if err != nil {
		return translate(err, "delete")
	}

	log.Printf("[INFO] Podcast %s deleted by user %s", podcastID, userID)
	s.removeFiles(ctx, deleted)
	return nil
}

func (s *Service) removeFiles(ctx context.Context, podcast *models.Podcast) {
	if s.files == nil || podcast == nil {
		return
	}
	for _, p := range []string{podcast.FrontImage, podcast.AudioFile} {
		if p == "" {
			continue
		}
		if err := s.files.Remove(ctx, p); err != nil {
			log.Printf("[WARN] Failed to remove file %s of podcast %s: %v", p, podcast.ID, err)
		}
	}
}

func (in CreateInput) missingFields() []string {
	fields := []struct{ name, value string }{
		{"title", in.Title},
		{"description", in.Description},
		{"category", in.CategoryName},
		{"frontImage", in.FrontImage},
		{"audioFile", in.AudioFile},
	}
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// translate maps repository errors onto client-facing AppErrors
func translate(err error, operation string) error {
	if _, ok := apperrors.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrPodcastNotFound):
		return apperrors.New(apperrors.ErrCodeNotFound, msgNotFound)
	case errors.Is(err, ErrDuplicateTitle):
		return apperrors.AlreadyExists(msgDuplicateTitle)
	default:
		return apperrors.DatabaseError(operation, err)
	}
}
