package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minisocial/internal/adapters/httpapi/middleware"
)

// renderPage renders an HTML template with the pending flash message and the
// logged-in username (when the route went through the auth middleware).
func renderPage(c *gin.Context, name string, data gin.H) {
	if flash, ok := middleware.TakeFlash(c); ok {
		data["Flash"] = flash
	}
	if username := c.GetString("username"); username != "" {
		data["Username"] = username
	}
	if userID := c.GetString("userID"); userID != "" {
		data["UserID"] = userID
	}
	c.HTML(http.StatusOK, name, data)
}
