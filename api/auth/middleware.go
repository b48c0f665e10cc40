package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/api/types"
	"github.com/killallgit/podcaster-api/internal/models"
	authService "github.com/killallgit/podcaster-api/internal/services/auth"
)

const userContextKey = "auth.user"

// DefaultCookieName is the session cookie read when none is configured
const DefaultCookieName = "podcasterUserToken"

// UserLoader resolves the user behind a validated token
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenValidator verifies a session token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*authService.Claims, error)
}

// Middleware authenticates requests from a session cookie or bearer header
type Middleware struct {
	tokens     TokenValidator
	users      UserLoader
	cookieName string
}

// NewMiddleware creates the auth middleware
func NewMiddleware(tokens TokenValidator, users UserLoader, cookieName string) *Middleware {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Middleware{
		tokens:     tokens,
		users:      users,
		cookieName: cookieName,
	}
}

// RequireUser rejects requests without a valid token for an existing user
func (m *Middleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.TokenFromRequest(c)
		if token == "" {
			types.SendUnauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			types.SendUnauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			types.SendUnauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}
		user, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			types.SendError(c, err, "Failed to load user")
			c.Abort()
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// TokenFromRequest returns the session cookie, else the bearer token
func (m *Middleware) TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CookieName returns the session cookie name
func (m *Middleware) CookieName() string {
	return m.cookieName
}

// SetCurrentUser attaches the authenticated user to the request
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the user attached by RequireUser
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// CurrentUserID returns the authenticated user's ID, or uuid.Nil
func CurrentUserID(c *gin.Context) uuid.UUID {
	if user, ok := CurrentUser(c); ok {
		return user.ID
	}
	return uuid.Nil
}
