package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"minisocial/internal/adapters/httpapi/middleware"
	"minisocial/internal/core/session"
	userPort "minisocial/internal/ports/user"
)

type UserController struct {
	uc     UserUseCase
	posts  PostUseCase
	secret []byte
}

func NewUserController(uc UserUseCase, posts PostUseCase, secret []byte) *UserController {
	return &UserController{uc: uc, posts: posts, secret: secret}
}

func (ctl *UserController) ShowRegister(c *gin.Context) {
	renderPage(c, "register.html", gin.H{"Title": "Register"})
}

func (ctl *UserController) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirm_password")

	_, err := ctl.uc.RegisterUser(c.Request.Context(), username, email, password, confirmPassword)
	switch {
	case err == nil:
		middleware.SetFlash(c, "success", "Registration successful! Please login.")
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, userPort.ErrPasswordMismatch):
		middleware.SetFlash(c, "error", "Passwords do not match!")
		c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, userPort.ErrMissingField):
		middleware.SetFlash(c, "error", "All fields are required!")
		c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, userPort.ErrDuplicate):
		middleware.SetFlash(c, "error", "Username or email already exists!")
		c.Redirect(http.StatusSeeOther, "/register")
	default:
		c.String(http.StatusInternalServerError, "internal error")
	}
}

func (ctl *UserController) ShowLogin(c *gin.Context) {
	renderPage(c, "login.html", gin.H{"Title": "Login"})
}

func (ctl *UserController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	res, err := ctl.uc.LoginUser(c.Request.Context(), username, password)
	switch {
	case err == nil:
		maxAge := int(res.ExpiresAt - time.Now().Unix())
		c.SetCookie(middleware.SessionCookie, res.Token, maxAge, "/", "", false, true)
		middleware.SetFlash(c, "success", "Login successful!")
		c.Redirect(http.StatusSeeOther, "/dashboard")
	case errors.Is(err, userPort.ErrInvalidCredentials):
		middleware.SetFlash(c, "error", "Invalid username or password!")
		c.Redirect(http.StatusSeeOther, "/login")
	default:
		c.String(http.StatusInternalServerError, "internal error")
	}
}

// Logout drops the server-side session (when the cookie still parses) and
// clears the cookie either way.
func (ctl *UserController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if claims, err := session.ParseToken(token, ctl.secret); err == nil {
			if err := ctl.uc.Logout(c.Request.Context(), claims.Id); err != nil {
				c.String(http.StatusInternalServerError, "internal error")
				return
			}
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	middleware.SetFlash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}

// Profile shows any user's bio and posts; every authenticated user may view
// every profile.
func (ctl *UserController) Profile(c *gin.Context) {
	userID := c.Param("id")

	profile, err := ctl.uc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	posts, err := ctl.posts.GetPostsByUser(c.Request.Context(), userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	renderPage(c, "profile.html", gin.H{
		"Title":   profile.Username,
		"Profile": profile,
		"Posts":   posts,
	})
}
