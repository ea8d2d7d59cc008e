// middleware/session_auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/session"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

// SessionAuth requires a console session and resolves the caller's
// permissions once per request. A failed resolution leaves the actor with
// no permissions, so protected operations answer 403 rather than 500.
func SessionAuth(resolver *permission.Resolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := session.FromRequest(c.Request, cookieName)
		if err != nil {
			logger.Warn("Request without a usable session",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		perms, err := resolver.ResolveWithError(c, s)
		if err != nil {
			logger.Warn("Failed to resolve permissions",
				zap.Error(err),
				zap.String("sub", s.Subject()))
		}

		util.SetSession(c, s)
		util.SetActor(c, permission.Actor{ID: s.Subject(), Permissions: perms})
		logger.Debug("Session resolved",
			zap.String("sub", s.Subject()),
			zap.Int("permissions", perms.Len()))

		c.Next()
	}
}
