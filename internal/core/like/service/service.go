package likeapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"

	"minisocial/internal/config"
	likeEntity "minisocial/internal/core/like"
	likePort "minisocial/internal/ports/like"
	postPort "minisocial/internal/ports/post"

	"go.uber.org/zap"
)

// LikeService flips the like state of a (user, post) pair.
type LikeService struct {
	LikeRepository likePort.LikeRepository
	PostRepository postPort.PostRepository
}

func NewLikeService(likeRepo likePort.LikeRepository, postRepo postPort.PostRepository) *LikeService {
	return &LikeService{
		LikeRepository: likeRepo,
		PostRepository: postRepo,
	}
}

// ToggleLike likes the post if the user has not liked it, unlikes it
// otherwise, and reports which happened. Instead of read-then-write it
// inserts first and treats the unique-index rejection as "already liked",
// so concurrent duplicate toggles cannot accumulate rows.
func (s *LikeService) ToggleLike(ctx context.Context, userID, postID string) (string, error) {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return "", err
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return "", fmt.Errorf("invalid userID: %w", err)
	}
	pid, err := uuid.FromString(postID)
	if err != nil {
		return "", fmt.Errorf("invalid postID: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	err = s.LikeRepository.Create(ctx, &likeEntity.Like{
		ID:     id,
		UserID: uid,
		PostID: pid,
	})
	switch {
	case err == nil:
		config.Logger.Info("post liked", zap.String("userID", userID), zap.String("postID", postID))
		return likePort.ActionLiked, nil
	case errors.Is(err, likePort.ErrAlreadyLiked):
		if err := s.LikeRepository.Delete(ctx, userID, postID); err != nil {
			return "", err
		}
		config.Logger.Info("post unliked", zap.String("userID", userID), zap.String("postID", postID))
		return likePort.ActionUnliked, nil
	default:
		return "", err
	}
}
