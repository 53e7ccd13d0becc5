package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS sets cross-origin headers for exactly one configured origin. Requests
// from any other origin get no CORS headers and are rejected by the browser.
func CORS(allowedOrigin string) gin.HandlerFunc {
	origin := strings.TrimSpace(allowedOrigin)

	return func(c *gin.Context) {
		requestOrigin := c.GetHeader("Origin")
		if origin != "" && requestOrigin != "" && strings.EqualFold(requestOrigin, origin) {
			c.Header("Access-Control-Allow-Origin", requestOrigin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
			c.Header("Access-Control-Max-Age", "3600")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
