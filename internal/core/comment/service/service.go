package commentapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"minisocial/internal/config"
	commentEntity "minisocial/internal/core/comment"
	commentPort "minisocial/internal/ports/comment"
	postPort "minisocial/internal/ports/post"

	"go.uber.org/zap"
)

// CommentService appends and lists comments. Comments are never edited or
// deleted once written.
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

// AddComment appends a comment to the post. The post must exist and the
// content must be non-empty.
func (s *CommentService) AddComment(ctx context.Context, userID, postID, content string) (*commentPort.CommentDTO, error) {
	if content == "" {
		return nil, commentPort.ErrEmptyContent
	}

	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid postID: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	created, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		ID:      id,
		UserID:  uid,
		PostID:  pid,
		Content: content,
	})
	if err != nil {
		config.Logger.Error("creating comment", zap.String("postID", postID), zap.Error(err))
		return nil, err
	}

	config.Logger.Info("comment added", zap.String("commentID", created.ID.String()), zap.String("postID", postID))
	return toCommentDTO(created), nil
}

// GetComments returns the post's comments oldest first.
func (s *CommentService) GetComments(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}
	return dtos, nil
}

func toCommentDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	return &commentPort.CommentDTO{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		UserID:    c.UserID.String(),
		Username:  c.User.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
