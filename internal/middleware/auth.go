package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/policy"
	"github.com/pixelforge/studio-console/internal/services"
)

// IdentitySessionKey is the fixed key the serialized identity lives under in
// the session store.
const IdentitySessionKey = "identity"

const contextIdentityKey = "identity"

// RestoreIdentity deserializes the persisted identity from the session and
// places it in the request context. It always succeeds: a missing or
// malformed record restores the anonymous identity. Role gates depend on the
// restored value, so this must run before any RequireRole in the chain.
func RestoreIdentity(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := models.Anonymous()

		session := sessions.Default(c)
		if raw, ok := session.Get(IdentitySessionKey).(string); ok {
			identity = sessionService.Decode(raw)
		}

		c.Set(contextIdentityKey, identity)
		c.Next()
	}
}

// RequireRole gates a dashboard route on an exact role match. Mismatches,
// including unauthenticated callers, are redirected to the entry point for
// the target role rather than answered with an error body.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity.Role != role {
			c.Redirect(http.StatusFound, policy.LoginPathFor(role))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity retrieves the restored identity from the request context.
func CurrentIdentity(c *gin.Context) models.Identity {
	value, exists := c.Get(contextIdentityKey)
	if !exists {
		return models.Anonymous()
	}

	identity, ok := value.(models.Identity)
	if !ok {
		return models.Anonymous()
	}
	return identity
}
