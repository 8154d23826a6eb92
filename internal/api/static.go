package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// ServeStaticFiles serves the built web frontend when a dist directory is
// present; otherwise unknown routes get a JSON 404.
func ServeStaticFiles(router *gin.Engine, distPath string) {
	if distPath != "" {
		if _, err := os.Stat(distPath); err == nil {
			router.StaticFile("/", filepath.Join(distPath, "index.html"))
			router.Static("/assets", filepath.Join(distPath, "assets"))

			// Catch-all for SPA routing
			router.NoRoute(func(c *gin.Context) {
				c.File(filepath.Join(distPath, "index.html"))
			})
			return
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error_message": "not found"})
	})
}
