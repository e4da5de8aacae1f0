package postapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"minisocial/internal/config"
	commentEntity "minisocial/internal/core/comment"
	postEntity "minisocial/internal/core/post"
	commentPort "minisocial/internal/ports/comment"
	likePort "minisocial/internal/ports/like"
	postPort "minisocial/internal/ports/post"
	userPort "minisocial/internal/ports/user"

	"go.uber.org/zap"
)

// PostService creates posts and assembles feed/profile listings. Like and
// comment counts are always computed from their rows at read time; there is
// no stored counter to drift out of sync.
type PostService struct {
	PostRepository    postPort.PostRepository
	LikeRepository    likePort.LikeRepository
	CommentRepository commentPort.CommentRepository
}

func NewPostService(
	postRepo postPort.PostRepository,
	likeRepo likePort.LikeRepository,
	commentRepo commentPort.CommentRepository,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		LikeRepository:    likeRepo,
		CommentRepository: commentRepo,
	}
}

// CreatePost stores a new post for the user. imagePath is nil when no image
// was uploaded; content must be non-empty.
func (s *PostService) CreatePost(ctx context.Context, userID, content string, imagePath *string) (*postPort.PostDTO, error) {
	if content == "" {
		return nil, postPort.ErrEmptyContent
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, &postEntity.Post{
		ID:        id,
		UserID:    uid,
		Content:   content,
		ImagePath: imagePath,
	})
	if err != nil {
		config.Logger.Error("creating post", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	config.Logger.Info("post created", zap.String("postID", created.ID.String()), zap.String("userID", userID))
	return s.toPostDTO(ctx, created)
}

// GetFeed returns every post newest first, each carrying its author, counts
// and comment thread for rendering.
func (s *PostService) GetFeed(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, posts)
}

// GetPostsByUser returns the user's posts newest first.
func (s *PostService) GetPostsByUser(ctx context.Context, userID string) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, posts)
}

func (s *PostService) toPostDTOs(ctx context.Context, posts []*postEntity.Post) ([]*postPort.PostDTO, error) {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dto, err := s.toPostDTO(ctx, p)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *PostService) toPostDTO(ctx context.Context, p *postEntity.Post) (*postPort.PostDTO, error) {
	likeCount, err := s.LikeRepository.CountByPostID(ctx, p.ID.String())
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.FindByPostID(ctx, p.ID.String())
	if err != nil {
		return nil, err
	}

	dto := &postPort.PostDTO{
		ID:           p.ID.String(),
		Content:      p.Content,
		UserID:       p.UserID.String(),
		LikeCount:    likeCount,
		CommentCount: int64(len(comments)),
		Comments:     toCommentDTOs(comments),
		CreatedAt:    p.CreatedAt,
	}
	if p.ImagePath != nil {
		dto.ImagePath = *p.ImagePath
	}
	if p.User.Username != "" {
		dto.User = &userPort.UserDTO{
			ID:       p.User.ID.String(),
			Username: p.User.Username,
			Bio:      p.User.Bio,
		}
	}
	return dto, nil
}

func toCommentDTOs(comments []*commentEntity.Comment) []*commentPort.CommentDTO {
	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, &commentPort.CommentDTO{
			ID:        c.ID.String(),
			PostID:    c.PostID.String(),
			UserID:    c.UserID.String(),
			Username:  c.User.Username,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return dtos
}
