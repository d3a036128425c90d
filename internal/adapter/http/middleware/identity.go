package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/pkg/apierrors"
)

const identityKey = "identity"

const bearerPrefix = "Bearer "

// IdentityMiddleware resolves the acting principal from the bearer
// token, which carries the caller's email. Callers whose email equals
// the configured admin email act as admins. The resolved identity is
// passed explicitly to services, never read ambiently.
func IdentityMiddleware(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgAuthRequired, lang))
			return
		}

		email := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if email == "" || !strings.Contains(email, "@") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgInvalidToken, lang))
			return
		}

		c.Set(identityKey, domain.Identity{
			UserID:  email,
			IsAdmin: email == adminEmail,
		})
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after
// IdentityMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.CreateError(apierrors.MsgAdminRequired, GetLang(c)))
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) domain.Identity {
	if value, exists := c.Get(identityKey); exists {
		if identity, ok := value.(domain.Identity); ok {
			return identity
		}
	}
	return domain.Identity{}
}
