package like

import (
	"context"
	"errors"

	"minisocial/internal/core/like"
)

// ErrAlreadyLiked is returned by Create when the (user, post) pair already
// exists. The toggle uses it as the race-safe signal to delete instead.
var ErrAlreadyLiked = errors.New("post already liked by user")

// Toggle outcomes.
const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

// LikeRepository is the outbound port for like storage.
type LikeRepository interface {
	Create(ctx context.Context, l *like.Like) error
	Delete(ctx context.Context, userID, postID string) error
	CountByPostID(ctx context.Context, postID string) (int64, error)
}
