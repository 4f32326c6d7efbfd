package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// publicPathPrefixes bypass authentication entirely.
var publicPathPrefixes = []string{
	"/api/auth/signup",
	"/api/auth/login",
	"/api/auth/forgot-password",
	"/api/auth/reset-password",
	"/api/auth/forgetpassword",
	"/health",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// bearerToken extracts the credential of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// Authenticate binds the caller's identity to the request when a valid bearer token
// names an enabled user. It never rejects a request: missing, invalid or unresolvable
// credentials leave the request anonymous and RequireAuth decides downstream.
func Authenticate(tokens portssvc.TokenSvc, identities portssvc.IdentitySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		logger := GetLoggerFromContext(c)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		token, ok := bearerToken(header)
		if !ok {
			logger.Warn("Authorization header format invalid, continuing anonymously")
			c.Next()
			return
		}

		subject, err := tokens.Verify(token)
		if err != nil {
			logger.Warn("Bearer token rejected, continuing anonymously", slog.String("error", err.Error()))
			c.Next()
			return
		}

		ctx := c.Request.Context()
		identity, err := identities.ResolveIdentity(ctx, subject)
		if err != nil {
			logger.Warn("Token subject did not resolve to an active user, continuing anonymously",
				slog.String("subject", subject), slog.String("error", err.Error()))
			c.Next()
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", identity.UserID))
		ctx = WithLogger(WithIdentity(ctx, *identity), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(identityKey), *identity)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentityFromContext(c); !ok {
			GetLoggerFromContext(c).Warn("Unauthenticated request to protected route")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}
