//go:build !embed
// +build !embed

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles configures static file serving for development (no embedding)
func setupStaticFiles(router *gin.Engine) {
	log.Println("🔧 Using local filesystem for frontend assets (development mode)")
	log.Println("   Storefront should be served separately with: cd web && npm run dev")

	// Configurator and gallery pictures referenced by the API
	router.Static("/configurator", "./web/public/configurator")
	router.StaticFile("/favicon.ico", "./web/public/favicon.ico")

	router.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgRouteNotFound})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Storefront is running separately",
			"dev_url": "http://localhost:3000",
			"hint":    "Run 'cd web && npm run dev' to start the frontend",
		})
	})
}
