package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"minisocial/internal/config"
	"minisocial/internal/core/like"
	likePort "minisocial/internal/ports/like"
)

// LikeRepositoryDatabase implements LikeRepository on the shared gorm handle.
type LikeRepositoryDatabase struct{}

func NewLikeRepositoryDatabase() *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{}
}

// Create inserts the like. When the (user_id, post_id) unique index rejects
// the row it returns likePort.ErrAlreadyLiked so the caller can flip to a
// delete without a prior read.
func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) error {
	if err := config.DB.WithContext(ctx).Create(l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return likePort.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// Delete removes the (user, post) like. Deleting a row that is already gone
// is not an error; under concurrent unlikes the second delete finds nothing.
func (repo *LikeRepositoryDatabase) Delete(ctx context.Context, userID, postID string) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&like.Like{}).Error
}

func (repo *LikeRepositoryDatabase) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := config.DB.WithContext(ctx).
		Model(&like.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
