package middleware

import (
	"context"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the authenticated caller in the contexts.
const identityKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromCtx retrieves the authenticated caller from a standard context.
func GetIdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// GetIdentityFromContext retrieves the authenticated caller from the Gin context,
// falling back to the request context.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	if v, exists := c.Get(string(identityKey)); exists {
		if identity, ok := v.(domain.Identity); ok {
			return identity, true
		}
	}
	return GetIdentityFromCtx(c.Request.Context())
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	identity, ok := GetIdentityFromContext(c)
	if !ok || identity.UserID == "" {
		return "", false
	}
	return identity.UserID, true
}
