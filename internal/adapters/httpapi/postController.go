package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"minisocial/internal/adapters/httpapi/middleware"
	postPort "minisocial/internal/ports/post"
)

type PostController struct {
	pc        PostUseCase
	uploadDir string
}

func NewPostController(pc PostUseCase, uploadDir string) *PostController {
	return &PostController{pc: pc, uploadDir: uploadDir}
}

// Dashboard renders the feed: every post newest first.
func (ctl *PostController) Dashboard(c *gin.Context) {
	posts, err := ctl.pc.GetFeed(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	renderPage(c, "dashboard.html", gin.H{
		"Title": "Dashboard",
		"Posts": posts,
	})
}

func (ctl *PostController) ShowCreatePost(c *gin.Context) {
	renderPage(c, "create_post.html", gin.H{"Title": "New Post"})
}

// CreatePost stores the submitted post. The image is optional; a file with a
// disallowed extension is silently skipped and the post is created without it.
func (ctl *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("userID")
	content := strings.TrimSpace(c.PostForm("content"))

	imagePath := saveImage(c, ctl.uploadDir, userID)

	_, err := ctl.pc.CreatePost(c.Request.Context(), userID, content, imagePath)
	switch {
	case err == nil:
		middleware.SetFlash(c, "success", "Post created successfully!")
		c.Redirect(http.StatusSeeOther, "/dashboard")
	case errors.Is(err, postPort.ErrEmptyContent):
		middleware.SetFlash(c, "error", "Content is required!")
		c.Redirect(http.StatusSeeOther, "/create_post")
	default:
		c.String(http.StatusInternalServerError, "internal error")
	}
}
