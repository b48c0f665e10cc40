package types

import (
	"github.com/killallgit/podcaster-api/internal/database"
	"github.com/killallgit/podcaster-api/internal/services/auth"
	"github.com/killallgit/podcaster-api/internal/services/cache"
	"github.com/killallgit/podcaster-api/internal/services/categories"
	"github.com/killallgit/podcaster-api/internal/services/feeds"
	"github.com/killallgit/podcaster-api/internal/services/podcasts"
	"github.com/killallgit/podcaster-api/internal/services/storage"
	"github.com/killallgit/podcaster-api/internal/services/users"
	"github.com/killallgit/podcaster-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Config          *config.Config
	Version         string
	DB              *database.DB
	Tokens          *auth.Service
	UserService     users.UserService
	CategoryService categories.CategoryService
	PodcastService  podcasts.PodcastService
	Storage         storage.Backend
	Cache           cache.Cache
	Feeds           *feeds.Builder
}
