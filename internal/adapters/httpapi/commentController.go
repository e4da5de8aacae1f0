package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"minisocial/internal/adapters/httpapi/middleware"
	commentPort "minisocial/internal/ports/comment"
	postPort "minisocial/internal/ports/post"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

// Create appends a comment to the post and returns to the dashboard.
func (ctl *CommentController) Create(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")
	content := strings.TrimSpace(c.PostForm("content"))

	_, err := ctl.cc.AddComment(c.Request.Context(), userID, postID, content)
	switch {
	case err == nil:
		middleware.SetFlash(c, "success", "Comment added!")
		c.Redirect(http.StatusSeeOther, "/dashboard")
	case errors.Is(err, commentPort.ErrEmptyContent):
		middleware.SetFlash(c, "error", "Comment cannot be empty!")
		c.Redirect(http.StatusSeeOther, "/dashboard")
	case errors.Is(err, postPort.ErrNotFound):
		c.String(http.StatusNotFound, "post not found")
	default:
		c.String(http.StatusInternalServerError, "internal error")
	}
}
