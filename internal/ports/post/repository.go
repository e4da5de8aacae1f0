package post

import (
	"context"
	"errors"
	"time"

	"minisocial/internal/core/post"
	commentPort "minisocial/internal/ports/comment"
	userPort "minisocial/internal/ports/user"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrEmptyContent = errors.New("post content is required")
)

// PostRepository is the outbound port for post storage. FindAll and
// FindByUserID return posts newest first with the author preloaded.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	FindByUserID(ctx context.Context, userID string) ([]*post.Post, error)
}

type PostDTO struct {
	ID           string                   `json:"id"`
	Content      string                   `json:"content"`
	ImagePath    string                   `json:"image_path,omitempty"`
	UserID       string                   `json:"user_id"`
	User         *userPort.UserDTO        `json:"user,omitempty"`
	LikeCount    int64                    `json:"like_count"`
	CommentCount int64                    `json:"comment_count"`
	Comments     []*commentPort.CommentDTO `json:"comments,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}
