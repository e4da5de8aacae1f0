package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"minisocial/internal/adapters/httpapi/middleware"
	commentPort "minisocial/internal/ports/comment"
	postPort "minisocial/internal/ports/post"
	sessionPort "minisocial/internal/ports/session"
	userPort "minisocial/internal/ports/user"
)

// UserUseCase is the inbound port consumed by the user controller.
type UserUseCase interface {
	RegisterUser(ctx context.Context, username, email, password, confirmPassword string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, userID string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID, content string, imagePath *string) (*postPort.PostDTO, error)
	GetFeed(ctx context.Context) ([]*postPort.PostDTO, error)
	GetPostsByUser(ctx context.Context, userID string) ([]*postPort.PostDTO, error)
}

type LikeUseCase interface {
	ToggleLike(ctx context.Context, userID, postID string) (string, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, userID, postID, content string) (*commentPort.CommentDTO, error)
	GetComments(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error)
}

// RouterConfig carries what the routing layer needs beyond the use cases.
type RouterConfig struct {
	Secret       []byte
	Sessions     sessionPort.SessionStore
	UploadDir    string
	TemplateGlob string
}

// SetupRoutes builds the gin engine: the explicit routing table plus static
// serving of uploaded images. Use cases are injected from the outside.
func SetupRoutes(
	cfg RouterConfig,
	userUC UserUseCase,
	postUC PostUseCase,
	likeUC LikeUseCase,
	commentUC CommentUseCase,
) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/uploads", cfg.UploadDir)

	auth := middleware.NewAuth(cfg.Secret, cfg.Sessions)
	uc := NewUserController(userUC, postUC, cfg.Secret)
	pc := NewPostController(postUC, cfg.UploadDir)
	lc := NewLikeController(likeUC)
	cc := NewCommentController(commentUC)

	r.GET("/", func(c *gin.Context) {
		renderPage(c, "index.html", gin.H{"Title": "minisocial"})
	})

	r.GET("/register", uc.ShowRegister)
	r.POST("/register", uc.Register)
	r.GET("/login", uc.ShowLogin)
	r.POST("/login", uc.Login)
	r.GET("/logout", uc.Logout)

	r.GET("/dashboard", auth.RequirePage(), pc.Dashboard)
	r.GET("/create_post", auth.RequirePage(), pc.ShowCreatePost)
	r.POST("/create_post", auth.RequirePage(), pc.CreatePost)
	r.GET("/profile/:id", auth.RequirePage(), uc.Profile)
	r.POST("/comment/:id", auth.RequirePage(), cc.Create)

	r.POST("/like/:id", auth.RequireAPI(), lc.Toggle)

	return r
}
