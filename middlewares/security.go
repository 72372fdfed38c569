package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// The public menu may be stored but must be revalidated since stock changes
// underneath it. Order and admin responses carry customer data and are
// never stored.
const menuCacheControl = "public, no-cache"

// SecurityHeaders sets the response headers for a JSON-only API.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Referrer-Policy", "no-referrer")

		if c.Request.Method == http.MethodGet && strings.HasPrefix(c.Request.URL.Path, "/api/menu") {
			h.Set("Cache-Control", menuCacheControl)
		} else {
			h.Set("Cache-Control", "no-store")
		}

		// HSTS is only meaningful once the request arrived over TLS, either
		// directly or through the reverse proxy in front of the storefront.
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
