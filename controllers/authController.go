package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/handlers"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the
// router. None of them sits behind the session gate: signup and login start
// sessions, logout tears its own down, and loggedin/private check the
// session themselves so they can answer instead of rejecting.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api.stem/signup", ac.Handler.Signup)
	router.POST("/api.stem/login", ac.Handler.Login)
	router.POST("/api.stem/logout", ac.Handler.Logout)
	router.GET("/api.stem/loggedin", ac.Handler.LoggedIn)
	router.GET("/api.stem/private", ac.Handler.Private)
}
