package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minisocial/internal/config"
	"minisocial/internal/core/session"
	commentPort "minisocial/internal/ports/comment"
	postPort "minisocial/internal/ports/post"
	sessionPort "minisocial/internal/ports/session"
	userPort "minisocial/internal/ports/user"

	"minisocial/internal/adapters/httpapi/middleware"
)

var testSecret = []byte("test-secret")

const testSessionTTL = time.Hour

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop()
	m.Run()
}

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	sessions map[string]*session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.Session)}
}

func (f *fakeSessionStore) Save(ctx context.Context, s *session.Session, ttl time.Duration) error {
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionStore) Find(ctx context.Context, id string) (*session.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, sessionPort.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

// fakeUserUC mints real tokens against the shared store so authenticated
// flows exercise the middleware for real.
type fakeUserUC struct {
	store       sessionPort.SessionStore
	registerErr error
	loginErr    error
	profile     *userPort.UserDTO
	profileErr  error
	loggedOut   []string
}

func (f *fakeUserUC) RegisterUser(ctx context.Context, username, email, password, confirmPassword string) (*userPort.UserDTO, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &userPort.UserDTO{ID: "uid-1", Username: username, Email: email}, nil
}

func (f *fakeUserUC) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	sess := &session.Session{ID: "sess-" + username, UserID: "uid-1", Username: username}
	if err := f.store.Save(ctx, sess, testSessionTTL); err != nil {
		return nil, err
	}
	token, err := session.NewToken(sess, testSecret, testSessionTTL)
	if err != nil {
		return nil, err
	}
	return &userPort.LoginResponse{Token: token, ExpiresAt: time.Now().Add(testSessionTTL).Unix()}, nil
}

func (f *fakeUserUC) Logout(ctx context.Context, sessionID string) error {
	f.loggedOut = append(f.loggedOut, sessionID)
	return f.store.Delete(ctx, sessionID)
}

func (f *fakeUserUC) GetProfile(ctx context.Context, userID string) (*userPort.UserDTO, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

type fakePostUC struct {
	feed      []*postPort.PostDTO
	userPosts []*postPort.PostDTO
	feedErr   error

	createdContent string
	createdImage   *string
	createdUserID  string
}

func (f *fakePostUC) CreatePost(ctx context.Context, userID, content string, imagePath *string) (*postPort.PostDTO, error) {
	if content == "" {
		return nil, postPort.ErrEmptyContent
	}
	f.createdUserID = userID
	f.createdContent = content
	f.createdImage = imagePath
	return &postPort.PostDTO{ID: "post-1", UserID: userID, Content: content}, nil
}

func (f *fakePostUC) GetFeed(ctx context.Context) ([]*postPort.PostDTO, error) {
	return f.feed, f.feedErr
}

func (f *fakePostUC) GetPostsByUser(ctx context.Context, userID string) ([]*postPort.PostDTO, error) {
	return f.userPosts, nil
}

type fakeLikeUC struct {
	action string
	err    error

	userID string
	postID string
}

func (f *fakeLikeUC) ToggleLike(ctx context.Context, userID, postID string) (string, error) {
	f.userID = userID
	f.postID = postID
	return f.action, f.err
}

type fakeCommentUC struct {
	err error

	postID  string
	content string
}

func (f *fakeCommentUC) AddComment(ctx context.Context, userID, postID, content string) (*commentPort.CommentDTO, error) {
	if content == "" {
		return nil, commentPort.ErrEmptyContent
	}
	if f.err != nil {
		return nil, f.err
	}
	f.postID = postID
	f.content = content
	return &commentPort.CommentDTO{ID: "comment-1", PostID: postID, UserID: userID, Content: content}, nil
}

func (f *fakeCommentUC) GetComments(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	return nil, nil
}

type testEnv struct {
	router   *gin.Engine
	store    *fakeSessionStore
	users    *fakeUserUC
	posts    *fakePostUC
	likes    *fakeLikeUC
	comments *fakeCommentUC
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeSessionStore()
	users := &fakeUserUC{store: store}
	posts := &fakePostUC{}
	likes := &fakeLikeUC{action: "liked"}
	comments := &fakeCommentUC{}

	router := SetupRoutes(RouterConfig{
		Secret:       testSecret,
		Sessions:     store,
		UploadDir:    t.TempDir(),
		TemplateGlob: "../../../web/templates/*.html",
	}, users, posts, likes, comments)

	return &testEnv{router: router, store: store, users: users, posts: posts, likes: likes, comments: comments}
}

// loginCookie mints a valid session cookie for "alice" backed by the store.
func (e *testEnv) loginCookie(t *testing.T) *http.Cookie {
	t.Helper()
	res, err := e.users.LoginUser(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("minting login session: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: res.Token}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}
