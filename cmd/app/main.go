package main

import (
	"os"

	dbadapter "minisocial/internal/adapters/database"
	"minisocial/internal/adapters/httpapi"
	redisadapter "minisocial/internal/adapters/redis"
	"minisocial/internal/config"
	"minisocial/internal/core/comment"
	commentapp "minisocial/internal/core/comment/service"
	"minisocial/internal/core/like"
	likeapp "minisocial/internal/core/like/service"
	"minisocial/internal/core/post"
	postapp "minisocial/internal/core/post/service"
	"minisocial/internal/core/user"
	userapp "minisocial/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&like.Like{},
		&comment.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	uploadDir := config.UploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		config.Logger.Fatal("Error creating upload directory:", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	likeRepo := dbadapter.NewLikeRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	sessions := redisadapter.NewSessionRepositoryRedis(config.RedisClient)

	secret := []byte(os.Getenv("SESSION_SECRET"))
	userSvc := userapp.NewUserService(userRepo, sessions, secret)
	postSvc := postapp.NewPostService(postRepo, likeRepo, commentRepo)
	likeSvc := likeapp.NewLikeService(likeRepo, postRepo)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)

	r := httpapi.SetupRoutes(httpapi.RouterConfig{
		Secret:       secret,
		Sessions:     sessions,
		UploadDir:    uploadDir,
		TemplateGlob: "web/templates/*.html",
	}, userSvc, postSvc, likeSvc, commentSvc)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
