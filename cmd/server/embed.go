//go:build embed
// +build embed

package main

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the built storefront from the binary and falls back
// to index.html for client-side routes
func setupStaticFiles(router *gin.Engine) {
	log.Println("📦 Using embedded storefront assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		log.Fatalf("Failed to get dist subdirectory: %v", err)
	}
	index, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		log.Fatalf("Embedded storefront has no index.html: %v", err)
	}
	files := http.FileServer(http.FS(distFS))

	router.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgRouteNotFound})
			return
		}

		name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
		if stat, err := fs.Stat(distFS, name); err == nil && !stat.IsDir() {
			// hashed bundles never change under the same name
			if strings.HasPrefix(name, "assets/") {
				c.Header("Cache-Control", "public, max-age=31536000, immutable")
			}
			files.ServeHTTP(c.Writer, c.Request)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}
