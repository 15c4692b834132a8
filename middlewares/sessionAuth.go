package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/services"
	"github.com/ogm710811/stem-cell-API/sessions"
	"github.com/ogm710811/stem-cell-API/utils"
)

// principalKey stores the resolved user on the gin context.
const principalKey = "principal"

// RequireSession rejects requests that do not carry a valid session. The
// reject status is per route group: entity CRUD routes respond 403, report
// routes 401, both with the same Unauthorized body.
func RequireSession(store sessions.Store, users services.UserService, rejectStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := ResolveSession(c, store, users)
		if !ok {
			c.AbortWithStatusJSON(rejectStatus, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(principalKey, user)
		c.Next()
	}
}

// ResolveSession resolves the request's session cookie to the full user
// record. The session holds only the user's id; when that id no longer
// resolves the session is torn down rather than treated as authenticated.
func ResolveSession(c *gin.Context, store sessions.Store, users services.UserService) (*models.User, bool) {
	token, err := c.Cookie(utils.SessionCookieName)
	if err != nil || token == "" {
		return nil, false
	}

	ctx := c.Request.Context()
	userID, err := store.Resolve(ctx, token)
	if err != nil {
		log.Printf("Failed to resolve session: %v", err)
		return nil, false
	}
	if userID == "" {
		return nil, false
	}

	user, err := users.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		if err != nil {
			log.Printf("Failed to load session principal: %v", err)
		}
		if err := store.Delete(ctx, token); err != nil {
			log.Printf("Failed to invalidate session: %v", err)
		}
		utils.ClearSessionCookie(c)
		return nil, false
	}
	return user, true
}

// CurrentUser returns the principal set by RequireSession, or nil on
// ungated routes.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(principalKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
