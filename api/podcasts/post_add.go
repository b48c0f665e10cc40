package podcasts

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/auth"
	"github.com/killallgit/podcaster-api/api/middleware"
	"github.com/killallgit/podcaster-api/api/types"
	"github.com/killallgit/podcaster-api/internal/services/podcasts"
)

// PostAdd creates a podcast from a multipart submission
// @Summary      Add a podcast
// @Description  Creates a podcast owned by the signed-in user. Files are uploaded as frontImage (png/jpeg) and audioFile (mpeg/wav).
// @Tags         podcasts
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData  string  true  "Podcast title"
// @Param        description  formData  string  true  "Podcast description"
// @Param        category     formData  string  true  "Category name"
// @Param        frontImage   formData  file    true  "Cover image"
// @Param        audioFile    formData  file    true  "Audio file"
// @Success      201  {object}  types.BaseResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      401  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /add-podcast [post]
func PostAdd(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := podcasts.CreateInput{
			Title:        c.PostForm("title"),
			Description:  c.PostForm("description"),
			CategoryName: c.PostForm("category"),
		}
		if image, ok := middleware.UploadedFileFor(c, middleware.FieldFrontImage); ok {
			input.FrontImage = image.PublicPath
		}
		if audio, ok := middleware.UploadedFileFor(c, middleware.FieldAudioFile); ok {
			input.AudioFile = audio.PublicPath
			input.AudioMimeType = audio.ContentType
			input.AudioSize = audio.Size
			input.DurationSeconds = audio.DurationSeconds
		}

		podcast, err := deps.PodcastService.Create(c.Request.Context(), auth.CurrentUserID(c), input)
		if err != nil {
			types.SendError(c, err, "Failed to add podcast")
			return
		}

		log.Printf("[DEBUG] Stored podcast %s with audio %s", podcast.ID, podcast.AudioFile)
		types.SendMessage(c, http.StatusCreated, "Podcast added successfully")
	}
}
