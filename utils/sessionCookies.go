package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the opaque session token.
	SessionCookieName = "stem.sid"

	// SessionLifetime is the coarse max lifetime of a session. There is no
	// idle-timeout logic; the Redis TTL and cookie expiry match.
	SessionLifetime = 28 * 24 * time.Hour
)

// SetSessionCookie attaches the session token to the response.
func SetSessionCookie(c *gin.Context, token string) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(SessionCookieName, token, int(SessionLifetime.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie so the immediately following
// request arrives anonymous.
func ClearSessionCookie(c *gin.Context) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
