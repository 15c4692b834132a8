package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupLogsTheNewUserIn(t *testing.T) {
	e := newEnv()

	rec := e.do(t, http.MethodPost, "/api.stem/signup", gin.H{
		"username": "omar",
		"password": "super-secret",
		"fullname": "Omar Garcia",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "omar", body["username"])
	assert.Equal(t, "regular_user", body["role"])
	assert.NotContains(t, rec.Body.String(), "super-secret")
	assert.NotContains(t, rec.Body.String(), "encryptedPassword")

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)

	rec = e.do(t, http.MethodGet, "/api.stem/loggedin", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "omar", decodeBody(t, rec)["username"])
}

func TestSignupRejectsIncompleteAndDuplicateCredentials(t *testing.T) {
	e := newEnv()

	rec := e.do(t, http.MethodPost, "/api.stem/signup", gin.H{"username": "omar"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please, provide your credentials", decodeBody(t, rec)["message"])

	e.signup(t, "omar")
	rec = e.do(t, http.MethodPost, "/api.stem/signup", gin.H{
		"username": "omar",
		"password": "another-secret",
		"fullname": "Impostor",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The username already exists", decodeBody(t, rec)["message"])
}

func TestLogin(t *testing.T) {
	e := newEnv()
	e.signup(t, "omar")

	rec := e.do(t, http.MethodPost, "/api.stem/login", gin.H{"username": "omar", "password": "super-secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "omar", decodeBody(t, rec)["username"])
	sessionCookie(t, rec)

	rec = e.do(t, http.MethodPost, "/api.stem/login", gin.H{"username": "omar", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Wrong username or password", decodeBody(t, rec)["message"])

	rec = e.do(t, http.MethodPost, "/api.stem/login", gin.H{"username": "nobody", "password": "super-secret"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Wrong username or password", decodeBody(t, rec)["message"])
}

func TestLogoutInvalidatesTheSession(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	rec := e.do(t, http.MethodPost, "/api.stem/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success Log Out", decodeBody(t, rec)["message"])

	rec = e.do(t, http.MethodGet, "/api.stem/loggedin", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized.", decodeBody(t, rec)["message"])
}

func TestLoggedInWithoutSession(t *testing.T) {
	e := newEnv()

	rec := e.do(t, http.MethodGet, "/api.stem/loggedin", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized.", decodeBody(t, rec)["message"])
}

func TestPrivate(t *testing.T) {
	e := newEnv()

	rec := e.do(t, http.MethodGet, "/api.stem/private", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])

	cookie := e.signup(t, "omar")
	rec = e.do(t, http.MethodGet, "/api.stem/private", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "This is a private message", decodeBody(t, rec)["message"])
}

func TestSessionOfDeletedUserIsTornDown(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	// Bind the session to a user id that no longer resolves.
	e.store.tokens[cookie.Value] = "64b0c0ffee0c0ffee0c0ffee"

	rec := e.do(t, http.MethodGet, "/api.stem/loggedin", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, e.store.tokens[cookie.Value])
}
