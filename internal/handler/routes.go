package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every API handler for route registration
type Handlers struct {
	Catalog      *CatalogHandler
	Intake       *IntakeHandler
	Images       *ImageHandler
	Configurator *ConfiguratorHandler
	Projects     *ProjectHandler
	Stats        *StatsHandler
}

// RegisterRoutes mounts the public and admin API under /api/v1.
// Admin routes pass through adminAuth.
func RegisterRoutes(router *gin.Engine, h Handlers, adminAuth gin.HandlerFunc) {
	apiV1 := router.Group("/api/v1")
	{
		// Catalog
		apiV1.GET("/categories", h.Catalog.ListCategories)
		apiV1.GET("/categories/:id", h.Catalog.GetCategory)
		apiV1.GET("/products", h.Catalog.ListProducts)
		apiV1.GET("/products/:id", h.Catalog.GetProduct)

		// Intake
		apiV1.POST("/leads", h.Intake.CreateLead)
		apiV1.POST("/orders", h.Intake.CreateOrder)

		// Images and portfolio
		apiV1.GET("/images/:id", h.Images.Get)
		apiV1.GET("/projects", h.Projects.List)

		// Configurator
		apiV1.GET("/configurator/steps", h.Configurator.Steps)
		apiV1.POST("/configurator/result", h.Configurator.Result)
		apiV1.POST("/configurator/quiz", h.Configurator.Quiz)
	}

	admin := router.Group("/api/v1", adminAuth)
	{
		admin.POST("/categories", h.Catalog.CreateCategory)
		admin.PUT("/categories/:id", h.Catalog.UpdateCategory)
		admin.DELETE("/categories/:id", h.Catalog.DeleteCategory)

		admin.POST("/products", h.Catalog.CreateProduct)
		admin.PUT("/products/:id", h.Catalog.UpdateProduct)
		admin.DELETE("/products/:id", h.Catalog.DeleteProduct)

		admin.GET("/leads", h.Intake.ListLeads)
		admin.GET("/leads/export", h.Intake.ExportLeads)
		admin.GET("/leads/:id", h.Intake.GetLead)
		admin.PUT("/leads/:id", h.Intake.UpdateLead)
		admin.DELETE("/leads/:id", h.Intake.DeleteLead)

		admin.GET("/orders", h.Intake.ListOrders)
		admin.GET("/orders/:id", h.Intake.GetOrder)
		admin.PUT("/orders/:id", h.Intake.UpdateOrder)
		admin.DELETE("/orders/:id", h.Intake.DeleteOrder)

		admin.POST("/upload", h.Images.Upload)

		admin.POST("/projects", h.Projects.Create)
		admin.DELETE("/projects/:id", h.Projects.Delete)

		admin.GET("/admin/stats", h.Stats.Get)
	}
}
