package middleware

import (
	"net/http"
	"strings"

	"calltrack/internal/auth"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the *auth.Identity of the
// authenticated caller.
const IdentityKey = "identity"

// SessionRequired authenticates the request from the session cookie,
// falling back to an Authorization bearer header for non-browser clients.
func SessionRequired(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
			tokenStr = cookie
		} else if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header format must be Bearer {token}"})
				return
			}
			tokenStr = parts[1]
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		identity, err := tm.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// RequireOperation authorizes the authenticated caller against the role
// allow-list for the named operation. Must run after SessionRequired.
func RequireOperation(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, known := operationRoles[op]
		if !known {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		identity := CallerIdentity(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
	}
}

// CallerIdentity returns the authenticated identity from the context, or
// nil when the request did not pass SessionRequired.
func CallerIdentity(c *gin.Context) *auth.Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*auth.Identity)
	if !ok {
		return nil
	}
	return identity
}
