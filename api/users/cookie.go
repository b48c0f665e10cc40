package users

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/auth"
	"github.com/killallgit/podcaster-api/api/types"
)

func cookieName(deps *types.Dependencies) string {
	if deps.Config != nil && deps.Config.Auth.CookieName != "" {
		return deps.Config.Auth.CookieName
	}
	return auth.DefaultCookieName
}

func cookieSecure(deps *types.Dependencies) bool {
	return deps.Config != nil && deps.Config.Auth.CookieSecure
}

// setSessionCookie writes an httpOnly cookie. Secure cookies are sent
// cross-site so a separately hosted frontend can use them.
func setSessionCookie(c *gin.Context, deps *types.Dependencies, value string, ttl time.Duration) {
	secure := cookieSecure(deps)
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}

	maxAge := int(ttl / time.Second)
	if ttl < 0 {
		maxAge = -1
	}
	c.SetCookie(cookieName(deps), value, maxAge, "/", "", secure, true)
}
