package feeds

import (
	"fmt"
	"strings"

	"github.com/eduncan911/podcast"
	"github.com/killallgit/podcaster-api/internal/models"
)

// Builder renders category feeds as RSS 2.0 with iTunes tags
type Builder struct {
	baseURL  string
	language string
}

// NewBuilder creates a feed builder. baseURL may be empty, in which case
// the caller passes one per request.
func NewBuilder(baseURL, language string) *Builder {
	if language == "" {
		language = "en-us"
	}
	return &Builder{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
	}
}

// BaseURL returns the configured public base URL, or fallback when unset
func (b *Builder) BaseURL(fallback string) string {
	if b.baseURL != "" {
		return b.baseURL
	}
	return strings.TrimRight(fallback, "/")
}

// CategoryFeed renders the podcasts of a category, newest first as given
func (b *Builder) CategoryFeed(baseURL string, category *models.Category, episodes []models.Podcast) ([]byte, error) {
	baseURL = b.BaseURL(baseURL)

	lastBuild := category.CreatedAt
	if len(episodes) > 0 && episodes[0].CreatedAt.After(lastBuild) {
		lastBuild = episodes[0].CreatedAt
	}

	p := podcast.New(
		category.CategoryName,
		fmt.Sprintf("%s/api/v1/category/%s", baseURL, category.CategoryName),
		fmt.Sprintf("Podcasts in the %s category.", category.CategoryName),
		&category.CreatedAt, &lastBuild,
	)
	p.Language = b.language
	p.AddCategory(category.CategoryName, nil)

	for _, episode := range episodes {
		pubDate := episode.CreatedAt
		description := episode.Description
		if strings.TrimSpace(description) == "" {
			// rows written before descriptions were required
			description = episode.Title
		}
		item := podcast.Item{
			GUID:        episode.ID.String(),
			Title:       episode.Title,
			Description: description,
			Link:        absolute(baseURL, fmt.Sprintf("api/v1/get-podcast/%s", episode.ID)),
			PubDate:     &pubDate,
		}
		if episode.FrontImage != "" {
			item.AddImage(absolute(baseURL, episode.FrontImage))
		}
		if episode.DurationSeconds > 0 {
			item.AddDuration(int64(episode.DurationSeconds))
		}
		if episode.AudioMimeType == "audio/mpeg" || strings.HasSuffix(strings.ToLower(episode.AudioFile), ".mp3") {
			item.AddEnclosure(absolute(baseURL, episode.AudioFile), podcast.MP3, episode.AudioSize)
		}
		if _, err := p.AddItem(item); err != nil {
			return nil, fmt.Errorf("adding %q to feed: %w", episode.Title, err)
		}
	}

	return p.Bytes(), nil
}

// absolute leaves full URLs (remote storage) untouched
func absolute(baseURL, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return baseURL + "/" + strings.TrimLeft(p, "/")
}
