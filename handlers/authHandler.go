package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ogm710811/stem-cell-API/middlewares"
	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/services"
	"github.com/ogm710811/stem-cell-API/sessions"
	"github.com/ogm710811/stem-cell-API/utils"
)

type AuthHandler struct {
	UserService services.UserService
	Sessions    sessions.Store
}

func NewAuthHandler(userService services.UserService, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
		Sessions:    store,
	}
}

// Signup creates a new user if the username doesn't exist and immediately
// logs the new user in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var in models.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please, provide your credentials"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.Signup(ctx, in)
	if err != nil {
		var dup *services.DuplicateKeyError
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please, provide your credentials"})
		case errors.As(err, &dup):
			c.JSON(http.StatusBadRequest, gin.H{"message": dup.Message})
		default:
			middlewares.HttpError(c, "Something went wrong", http.StatusInternalServerError, err)
		}
		return
	}

	if !h.establishSession(c, user) {
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login creates a new session and returns the user resource. The password is
// never echoed back; an unknown username and a wrong password fail the same way.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please, provide your credentials"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Wrong username or password"})
			return
		}
		middlewares.HttpError(c, "Something went wrong", http.StatusInternalServerError, err)
		return
	}

	if !h.establishSession(c, user) {
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout deletes the current session so the immediately following request
// arrives anonymous.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(utils.SessionCookieName); err == nil && token != "" {
		if err := h.Sessions.Delete(c.Request.Context(), token); err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
	}
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Success Log Out"})
}

// LoggedIn lets the client check for a session and returns the user resource.
func (h *AuthHandler) LoggedIn(c *gin.Context) {
	if user, ok := middlewares.ResolveSession(c, h.Sessions, h.UserService); ok {
		c.JSON(http.StatusOK, user)
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
}

// Private returns protected, user-unrelated data when a session is present.
func (h *AuthHandler) Private(c *gin.Context) {
	if _, ok := middlewares.ResolveSession(c, h.Sessions, h.UserService); ok {
		c.JSON(http.StatusOK, gin.H{"message": "This is a private message"})
		return
	}
	c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
}

func (h *AuthHandler) establishSession(c *gin.Context, user *models.User) bool {
	token, err := h.Sessions.Create(c.Request.Context(), user.ID.Hex())
	if err != nil {
		middlewares.HttpError(c, "Something went wrong", http.StatusInternalServerError, err)
		return false
	}
	utils.SetSessionCookie(c, token)
	return true
}
