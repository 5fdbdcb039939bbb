package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/internal/logger"
)

// usernameContextKeyType is an unexported, collision-proof context key.
type usernameContextKeyType struct{}

var usernameKey = usernameContextKeyType{}

// UsernameGinKey is where the authenticated username lives in the gin
// context for downstream handlers.
const UsernameGinKey = "username"

// UsernameFromContext extracts the authenticated username from a request
// context.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// TokenVerifier checks a token's signature and expiration.
type TokenVerifier interface {
	VerifyToken(tokenString string) error
}

// AuthMiddleware gates the authenticated route group. A request must
// carry the session cookie of a live session record whose access token
// still verifies; the session's username is attached to the request
// context so handlers never trust client-supplied identity.
type AuthMiddleware struct {
	store      domain.SessionStore
	verifier   TokenVerifier
	cookieName string
}

// NewAuthMiddleware creates an AuthMiddleware with the given session
// store, token verifier and session cookie name.
func NewAuthMiddleware(store domain.SessionStore, verifier TokenVerifier, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{store: store, verifier: verifier, cookieName: cookieName}
}

// RequireAuth is the gin middleware enforcing the session contract.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)

		sessionID, err := c.Cookie(a.cookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "User not logged in."})
			return
		}

		sess, err := a.store.Get(ctx, sessionID)
		if err != nil {
			log.Error().Err(err).Msg("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "User not logged in."})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "User not logged in."})
			return
		}

		// The session record stays in place on failure so a retry gets
		// the same token error, not a "not logged in".
		if err := a.verifier.VerifyToken(sess.AccessToken); err != nil {
			log.Warn().Str("user", sess.Username).Msg("Token verification failed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "User not authenticated or token expired."})
			return
		}

		c.Set(UsernameGinKey, sess.Username)
		c.Request = c.Request.WithContext(context.WithValue(ctx, usernameKey, sess.Username))
		c.Next()
	}
}
