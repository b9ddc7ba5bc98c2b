package handlers

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/SscSPs/fund_balance_app/web"
	"github.com/gin-gonic/gin"
)

// staticAssets maps request paths to embedded files and their content types.
var staticAssets = map[string]struct {
	file        string
	contentType string
}{
	"/":           {"static/index.html", "text/html; charset=utf-8"},
	"/app.js":     {"static/app.js", "text/javascript; charset=utf-8"},
	"/widget.js":  {"static/widget.js", "text/javascript; charset=utf-8"},
	"/styles.css": {"static/styles.css", "text/css; charset=utf-8"},
}

// registerStaticRoutes serves the browser client and the embeddable widget from the binary.
func registerStaticRoutes(r *gin.Engine) error {
	for path, asset := range staticAssets {
		body, err := fs.ReadFile(web.Static, asset.file)
		if err != nil {
			return fmt.Errorf("failed to read embedded asset %s: %w", asset.file, err)
		}
		contentType := asset.contentType
		r.GET(path, func(c *gin.Context) {
			c.Header("Cache-Control", "no-cache")
			c.Data(http.StatusOK, contentType, body)
		})
	}
	return nil
}
