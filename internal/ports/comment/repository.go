package comment

import (
	"context"
	"errors"
	"time"

	"minisocial/internal/core/comment"
)

var ErrEmptyContent = errors.New("comment content is required")

// CommentRepository is the outbound port for comment storage.
// FindByPostID returns comments oldest first with the author preloaded.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)
	CountByPostID(ctx context.Context, postID string) (int64, error)
}

type CommentDTO struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
