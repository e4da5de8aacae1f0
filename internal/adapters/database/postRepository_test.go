package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"minisocial/internal/core/post"
	postPort "minisocial/internal/ports/post"
)

func TestPostRepositoryCreate(t *testing.T) {
	newTestDB(t)
	repo := NewPostRepositoryDatabase()

	author := createTestUser(t, "writer")
	img := "uploads/pic.png"

	created, err := repo.Create(context.Background(), &post.Post{
		ID:        mustUUID(t),
		UserID:    author.ID,
		Content:   "first post",
		ImagePath: &img,
	})
	assert.NoError(t, err)
	assert.Equal(t, "first post", created.Content)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestPostRepositoryFindByID(t *testing.T) {
	newTestDB(t)
	repo := NewPostRepositoryDatabase()

	author := createTestUser(t, "writer")
	created := createTestPost(t, author, "hello", time.Now())

	found, err := repo.FindByID(context.Background(), created.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "hello", found.Content)
	assert.Equal(t, "writer", found.User.Username, "author should be preloaded")
}

func TestPostRepositoryFindByID_NotFound(t *testing.T) {
	newTestDB(t)
	repo := NewPostRepositoryDatabase()

	_, err := repo.FindByID(context.Background(), mustUUID(t).String())
	assert.ErrorIs(t, err, postPort.ErrNotFound)
}

func TestPostRepositoryFindAll_NewestFirst(t *testing.T) {
	newTestDB(t)
	repo := NewPostRepositoryDatabase()

	author := createTestUser(t, "writer")
	base := time.Now().Add(-time.Hour)
	createTestPost(t, author, "oldest", base)
	createTestPost(t, author, "middle", base.Add(time.Minute))
	createTestPost(t, author, "newest", base.Add(2*time.Minute))

	posts, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, posts, 3) {
		assert.Equal(t, "newest", posts[0].Content)
		assert.Equal(t, "middle", posts[1].Content)
		assert.Equal(t, "oldest", posts[2].Content)
	}
	assert.Equal(t, "writer", posts[0].User.Username, "author should be preloaded")
}

func TestPostRepositoryFindByUserID(t *testing.T) {
	newTestDB(t)
	repo := NewPostRepositoryDatabase()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	base := time.Now().Add(-time.Hour)
	createTestPost(t, alice, "alice old", base)
	createTestPost(t, bob, "bob post", base.Add(time.Minute))
	createTestPost(t, alice, "alice new", base.Add(2*time.Minute))

	posts, err := repo.FindByUserID(context.Background(), alice.ID.String())
	assert.NoError(t, err)
	if assert.Len(t, posts, 2) {
		assert.Equal(t, "alice new", posts[0].Content)
		assert.Equal(t, "alice old", posts[1].Content)
	}
}

func TestPostRepositoryFindAll_Empty(t *testing.T) {
	newTestDB(t)
	repo := NewPostRepositoryDatabase()

	posts, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, posts)
}
