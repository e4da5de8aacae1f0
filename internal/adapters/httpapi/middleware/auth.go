package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minisocial/internal/core/session"
	sessionPort "minisocial/internal/ports/session"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// Auth validates the session cookie on protected routes. A request is
// authenticated when the cookie token verifies AND its session still exists
// in the store, so logout invalidates outstanding cookies immediately.
type Auth struct {
	secret   []byte
	sessions sessionPort.SessionStore
}

func NewAuth(secret []byte, sessions sessionPort.SessionStore) *Auth {
	return &Auth{secret: secret, sessions: sessions}
}

// RequirePage guards browser page routes: unauthenticated requests are
// flashed and redirected to the login form.
func (a *Auth) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.authenticate(c); err != nil {
			SetFlash(c, "error", "Please login first!")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPI guards JSON routes: unauthenticated requests get a 401 body.
func (a *Auth) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.authenticate(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Next()
	}
}

func (a *Auth) authenticate(c *gin.Context) error {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return err
	}

	claims, err := session.ParseToken(token, a.secret)
	if err != nil {
		return err
	}

	sess, err := a.sessions.Find(c.Request.Context(), claims.Id)
	if err != nil {
		return err
	}
	if sess.UserID != claims.Subject {
		return errors.New("session identity mismatch")
	}

	c.Set("userID", sess.UserID)
	c.Set("username", sess.Username)
	c.Set("sessionID", sess.ID)
	return nil
}
