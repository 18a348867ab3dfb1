package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware sets response headers for a JSON API. HSTS is only
// sent in production where TLS terminates in front of the service.
func SecurityHeadersMiddleware(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isProduction {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Responses carry candidate personal data
		c.Header("Cache-Control", "no-store")

		c.Next()
	}
}
