package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	postPort "minisocial/internal/ports/post"
)

type LikeController struct{ lc LikeUseCase }

func NewLikeController(lc LikeUseCase) *LikeController { return &LikeController{lc: lc} }

// Toggle likes or unlikes the post for the acting user and reports the
// resulting action as JSON, for asynchronous invocation from the feed page.
func (ctl *LikeController) Toggle(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	action, err := ctl.lc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		if errors.Is(err, postPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"action": action})
}
