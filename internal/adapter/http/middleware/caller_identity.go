package middleware

import (
	"net/http"
	"strings"

	"greetpage/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// CallerIDHeader is installed by the edge gateway after it validates the
	// session token. This service trusts it; it is never exposed directly.
	CallerIDHeader = "X-User-ID"

	callerIDKey = "caller_id"
)

// CallerIdentity rejects requests without a resolved caller. Webhook routes
// do not use it: providers authenticate via signatures, not sessions.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := strings.TrimSpace(c.GetHeader(CallerIDHeader))
		if callerID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(callerIDKey, callerID)
		c.Next()
	}
}

// CallerID returns the authenticated caller id set by CallerIdentity.
func CallerID(c *gin.Context) string {
	return c.GetString(callerIDKey)
}
