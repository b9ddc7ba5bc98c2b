package middleware

import (
	"strings"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecurityHeaders applies conf through gin-contrib/secure plus the path rules it cannot express.
// The swagger UI runs without a CSP and only the widget script may be loaded cross-origin.
func SecurityHeaders(conf secure.Config) gin.HandlerFunc {
	withCSP := secure.New(conf)
	conf.ContentSecurityPolicy = ""
	withoutCSP := secure.New(conf)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		// swagger-ui bootstraps with an inline script
		if strings.HasPrefix(path, "/swagger/") {
			withoutCSP(c)
		} else {
			withCSP(c)
		}
		if c.IsAborted() {
			return
		}

		h := c.Writer.Header()
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		if path == "/widget.js" {
			h.Set("Cross-Origin-Resource-Policy", "cross-origin")
		} else {
			h.Set("Cross-Origin-Resource-Policy", "same-site")
		}
		c.Next()
	}
}
