package categories

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

const rssContentType = "application/rss+xml; charset=utf-8"

// GetFeed renders a category as an RSS feed
// @Summary      Category RSS feed
// @Description  RSS 2.0 feed with iTunes tags of every podcast in the category, newest first
// @Tags         categories
// @Produce      xml
// @Param        cat  path  string  true  "Category name or slug"
// @Success      200  {string}  string  "RSS document"
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /category/{cat}/feed [get]
func GetFeed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		category, err := deps.CategoryService.Resolve(ctx, c.Param("cat"))
		if err != nil {
			types.SendError(c, err, "Internal server error")
			return
		}

		episodes, err := deps.PodcastService.ListByCategoryName(ctx, category.CategoryName)
		if err != nil {
			types.SendError(c, err, "Internal server error")
			return
		}

		feed, err := deps.Feeds.CategoryFeed(requestBaseURL(c), category, episodes)
		if err != nil {
			types.SendError(c, err, "Failed to build feed")
			return
		}
		c.Data(http.StatusOK, rssContentType, feed)
	}
}

// requestBaseURL derives scheme://host from the request
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}
