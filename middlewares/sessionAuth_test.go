package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogm710811/stem-cell-API/middlewares"
	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/utils"
)

type stubStore struct {
	tokens  map[string]string
	deleted []string
}

func (s *stubStore) Create(_ context.Context, userID string) (string, error) {
	return "", nil
}

func (s *stubStore) Resolve(_ context.Context, token string) (string, error) {
	return s.tokens[token], nil
}

func (s *stubStore) Delete(_ context.Context, token string) error {
	s.deleted = append(s.deleted, token)
	delete(s.tokens, token)
	return nil
}

type stubUserService struct {
	users map[string]*models.User
}

func (s *stubUserService) Signup(_ context.Context, _ models.SignupInput) (*models.User, error) {
	panic("not used")
}

func (s *stubUserService) Authenticate(_ context.Context, _, _ string) (*models.User, error) {
	panic("not used")
}

func (s *stubUserService) GetUserByID(_ context.Context, id string) (*models.User, error) {
	return s.users[id], nil
}

func newGatedRouter(store *stubStore, users *stubUserService, rejectStatus int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", middlewares.RequireSession(store, users, rejectStatus), func(c *gin.Context) {
		user := middlewares.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return router
}

func get(router *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireSessionRejectsWithConfiguredStatus(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusUnauthorized} {
		router := newGatedRouter(&stubStore{tokens: map[string]string{}}, &stubUserService{}, status)

		rec := get(router, nil)
		assert.Equal(t, status, rec.Code)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
	}
}

func TestRequireSessionSetsThePrincipal(t *testing.T) {
	userID := primitive.NewObjectID()
	store := &stubStore{tokens: map[string]string{"valid-token": userID.Hex()}}
	users := &stubUserService{users: map[string]*models.User{
		userID.Hex(): {ID: userID, Username: "omar"},
	}}
	router := newGatedRouter(store, users, http.StatusForbidden)

	rec := get(router, &http.Cookie{Name: utils.SessionCookieName, Value: "valid-token"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"omar"}`, rec.Body.String())
}

func TestRequireSessionRejectsUnknownToken(t *testing.T) {
	router := newGatedRouter(&stubStore{tokens: map[string]string{}}, &stubUserService{}, http.StatusForbidden)

	rec := get(router, &http.Cookie{Name: utils.SessionCookieName, Value: "stale-token"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// A session whose user id no longer resolves is torn down, not trusted.
func TestRequireSessionTearsDownOrphanedSession(t *testing.T) {
	store := &stubStore{tokens: map[string]string{"orphan": primitive.NewObjectID().Hex()}}
	users := &stubUserService{users: map[string]*models.User{}}
	router := newGatedRouter(store, users, http.StatusForbidden)

	rec := get(router, &http.Cookie{Name: utils.SessionCookieName, Value: "orphan"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, []string{"orphan"}, store.deleted)

	// The cookie is expired in the same response.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, utils.SessionCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
