package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a one-shot message shown on the next rendered page, in the style
// of the usual "flash" pattern: set on redirect, consumed on render.
type Flash struct {
	Category string // "success", "error" or "info"
	Message  string
}

// SetFlash stores the message in a short-lived cookie.
func SetFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, category+"|"+message, 60, "/", "", false, true)
}

// TakeFlash reads and clears the pending flash message, if any.
func TakeFlash(c *gin.Context) (*Flash, bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil, false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil, false
	}
	return &Flash{Category: category, Message: message}, true
}
