package middleware

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
	"github.com/killallgit/podcaster-api/internal/media"
	"github.com/killallgit/podcaster-api/internal/services/storage"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
)

const (
	FieldFrontImage = "frontImage"
	FieldAudioFile  = "audioFile"

	uploadsContextKey = "uploads.files"

	// DefaultMaxUploadSize caps a whole multipart body
	DefaultMaxUploadSize int64 = 100 << 20

	msgInvalidFileType = "Invalid file type"
)

// allowedTypes lists the accepted content types per form field
var allowedTypes = map[string]map[string]bool{
	FieldFrontImage: {"image/png": true, "image/jpeg": true, "image/jpg": true},
	FieldAudioFile:  {"audio/mpeg": true, "audio/wav": true},
}

// UploadedFile describes a file saved for the current request
type UploadedFile struct {
	Field           string
	OriginalName    string
	StoredName      string
	PublicPath      string
	ContentType     string
	Size            int64
	DurationSeconds int
}

// UploadConfig configures the upload middleware
type UploadConfig struct {
	Storage storage.Backend
	MaxSize int64
	// Now stamps stored names; defaults to time.Now
	Now func() time.Time
}

type pendingFile struct {
	field       string
	header      *multipart.FileHeader
	contentType string
}

// Upload parses multipart bodies, validates every file part, saves them and
// exposes them to the handler. Saved files are removed again when the
// handler responds with an error status.
func Upload(cfg UploadConfig) gin.HandlerFunc {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxUploadSize
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxSize)
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "File too large",
					Details: fmt.Sprintf("maximum upload size is %d bytes", cfg.MaxSize),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid multipart form",
				Error:   err.Error(),
			})
			return
		}
		defer c.Request.MultipartForm.RemoveAll()

		pending, err := validateParts(c.Request.MultipartForm)
		if err != nil {
			log.Printf("[WARN] Rejected upload from %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: msgInvalidFileType,
				Details: err.Error(),
			})
			return
		}

		stamp := cfg.Now().UnixMilli()
		saved := make(map[string]*UploadedFile, len(pending))
		used := make(map[string]bool, len(pending))
		for _, p := range pending {
			name := storedName(stamp, p.header.Filename)
			if used[name] {
				// same original name in two fields of one submission
				name = fmt.Sprintf("%d-%s-%s", stamp, p.field, baseName(p.header.Filename))
			}
			used[name] = true

			file, err := saveFile(c, cfg.Storage, p, name)
			if err != nil {
				log.Printf("[ERROR] Failed to save upload %s: %v", p.header.Filename, err)
				removeFiles(c, cfg.Storage, saved)
				types.SendError(c, apperrors.StorageError("save", err), "Failed to save upload")
				c.Abort()
				return
			}
			saved[p.field] = file
		}

		c.Set(uploadsContextKey, saved)
		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest && len(saved) > 0 {
			log.Printf("[INFO] Request failed with %d, removing %d uploaded file(s)", c.Writer.Status(), len(saved))
			removeFiles(c, cfg.Storage, saved)
		}
	}
}

// UploadedFiles returns the files saved for this request, keyed by field
func UploadedFiles(c *gin.Context) map[string]*UploadedFile {
	value, exists := c.Get(uploadsContextKey)
	if !exists {
		return nil
	}
	files, _ := value.(map[string]*UploadedFile)
	return files
}

// UploadedFileFor returns the file saved under field, if any
func UploadedFileFor(c *gin.Context, field string) (*UploadedFile, bool) {
	file, ok := UploadedFiles(c)[field]
	return file, ok
}

// validateParts checks every file part before anything is written
func validateParts(form *multipart.Form) ([]pendingFile, error) {
	var pending []pendingFile
	for field, headers := range form.File {
		allowed, known := allowedTypes[field]
		if !known {
			return nil, fmt.Errorf("unexpected file field %q", field)
		}
		if len(headers) != 1 {
			return nil, fmt.Errorf("field %q accepts exactly one file", field)
		}

		header := headers[0]
		contentType, err := detectType(header)
		if err != nil {
			return nil, err
		}
		if !allowed[contentType] {
			return nil, fmt.Errorf("field %q does not accept %s", field, contentType)
		}
		pending = append(pending, pendingFile{field: field, header: header, contentType: contentType})
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].field < pending[j].field })
	return pending, nil
}

func detectType(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", header.Filename, err)
	}
	defer file.Close()
	return media.ContentType(header.Header.Get("Content-Type"), file)
}

func saveFile(c *gin.Context, backend storage.Backend, p pendingFile, name string) (*UploadedFile, error) {
	file, err := p.header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", p.header.Filename, err)
	}
	defer file.Close()

	uploaded := &UploadedFile{
		Field:        p.field,
		OriginalName: p.header.Filename,
		StoredName:   name,
		ContentType:  p.contentType,
		Size:         p.header.Size,
	}

	if p.contentType == "audio/mpeg" {
		if d, err := media.MP3Duration(file); err == nil {
			uploaded.DurationSeconds = int(d.Round(time.Second) / time.Second)
		} else {
			log.Printf("[DEBUG] Could not read duration of %s: %v", p.header.Filename, err)
		}
		if _, err := file.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("rewinding %s: %w", p.header.Filename, err)
		}
	}

	publicPath, err := backend.Save(c.Request.Context(), uploaded.StoredName, file, p.contentType)
	if err != nil {
		return nil, err
	}
	uploaded.PublicPath = publicPath
	return uploaded, nil
}

// storedName is <unix-ms>-<original base name>
func storedName(stamp int64, original string) string {
	return fmt.Sprintf("%d-%s", stamp, baseName(original))
}

func baseName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	return base
}

func removeFiles(c *gin.Context, backend storage.Backend, files map[string]*UploadedFile) {
	for _, f := range files {
		if err := backend.Remove(c.Request.Context(), f.PublicPath); err != nil {
			log.Printf("[WARN] Failed to remove upload %s: %v", f.PublicPath, err)
		}
	}
}
