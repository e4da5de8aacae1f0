package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"minisocial/internal/core/session"
	sessionPort "minisocial/internal/ports/session"
)

var testSecret = []byte("test-secret")

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

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

// newAuthRouter mounts one page route and one API route behind the guard and
// echoes the identity the middleware resolved.
func newAuthRouter(store sessionPort.SessionStore) *gin.Engine {
	auth := NewAuth(testSecret, store)
	r := gin.New()
	r.GET("/page", auth.RequirePage(), func(c *gin.Context) {
		c.String(http.StatusOK, "hello "+c.GetString("username"))
	})
	r.GET("/api", auth.RequireAPI(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func mintCookie(t *testing.T, store sessionPort.SessionStore, sess *session.Session, ttl time.Duration) *http.Cookie {
	t.Helper()
	if err := store.Save(context.Background(), sess, ttl); err != nil {
		t.Fatalf("saving session: %v", err)
	}
	token, err := session.NewToken(sess, testSecret, ttl)
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	return &http.Cookie{Name: SessionCookie, Value: token}
}

func TestRequirePage_Authenticated(t *testing.T) {
	store := newFakeSessionStore()
	router := newAuthRouter(store)

	cookie := mintCookie(t, store, &session.Session{ID: "s1", UserID: "u1", Username: "alice"}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hello alice", rr.Body.String())
}

func TestRequirePage_NoCookie(t *testing.T) {
	router := newAuthRouter(newFakeSessionStore())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestRequirePage_GarbageToken(t *testing.T) {
	router := newAuthRouter(newFakeSessionStore())

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestRequirePage_SessionRevoked(t *testing.T) {
	store := newFakeSessionStore()
	router := newAuthRouter(store)

	cookie := mintCookie(t, store, &session.Session{ID: "s1", UserID: "u1", Username: "alice"}, time.Hour)
	store.Delete(context.Background(), "s1")

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// token still verifies, but the session is gone server-side
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestRequirePage_IdentityMismatch(t *testing.T) {
	store := newFakeSessionStore()
	router := newAuthRouter(store)

	cookie := mintCookie(t, store, &session.Session{ID: "s1", UserID: "u1", Username: "alice"}, time.Hour)
	// the stored session now claims a different user
	store.sessions["s1"].UserID = "u2"

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestRequireAPI_Authenticated(t *testing.T) {
	store := newFakeSessionStore()
	router := newAuthRouter(store)

	cookie := mintCookie(t, store, &session.Session{ID: "s1", UserID: "u1", Username: "alice"}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "u1")
}

func TestRequireAPI_NoCookie(t *testing.T) {
	router := newAuthRouter(newFakeSessionStore())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "not logged in")
}

func TestRequirePage_ExpiredToken(t *testing.T) {
	store := newFakeSessionStore()
	router := newAuthRouter(store)

	cookie := mintCookie(t, store, &session.Session{ID: "s1", UserID: "u1", Username: "alice"}, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
}
