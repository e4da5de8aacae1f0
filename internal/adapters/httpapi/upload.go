package httpapi

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"minisocial/internal/config"

	"go.uber.org/zap"
)

const maxUploadSize = 5 << 20 // 5 MiB

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// saveImage stores the optional "image" form file under uploadDir and
// returns the relative path to persist on the post. Any reason not to keep
// the file (absent, too large, disallowed extension, write failure) yields
// nil: the post is then created without an image.
func saveImage(c *gin.Context, uploadDir, userID string) *string {
	file, err := c.FormFile("image")
	if err != nil || file.Filename == "" {
		return nil
	}
	if file.Size > maxUploadSize {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return nil
	}

	// filename namespaced by the uploader to reduce collisions
	name := userID + "_" + sanitizeFilename(filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		config.Logger.Error("saving uploaded image", zap.String("name", name), zap.Error(err))
		return nil
	}

	rel := "uploads/" + name
	return &rel
}

// sanitizeFilename keeps letters, digits, dot, dash and underscore so the
// stored name is safe to join into a filesystem path and a URL.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
