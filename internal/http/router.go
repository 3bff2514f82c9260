package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Health, cfg.Version)
	tutorialsController := NewTutorialsController(cfg.Tutorials, cfg.PageSize)
	collectionsController := NewCollectionsController(cfg.Collections)
	trashController := NewTrashController(cfg.Trash)
	sharedFilesController := NewSharedFilesController(cfg.SharedFiles)
	markdownController := NewMarkdownController(cfg.Tutorials)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Tutorial endpoints
	router.GET("/api/tutorials", tutorialsController.List)
	router.GET("/api/tutorials/stats", tutorialsController.Stats)
	router.GET("/api/tutorials/categories", tutorialsController.Categories)
	router.GET("/api/tutorials/:id", tutorialsController.Get)
	router.POST("/api/tutorials", tutorialsController.Create)
	router.PATCH("/api/tutorials/:id", tutorialsController.Update)
	router.DELETE("/api/tutorials/:id", tutorialsController.Delete)

	// Markdown import/export endpoints
	router.POST("/api/tutorials/import", markdownController.Import)
	router.GET("/api/tutorials/:id/markdown", markdownController.Export)

	// Collection endpoints
	router.GET("/api/collections", collectionsController.List)
	router.GET("/api/collections/stats", collectionsController.Stats)
	router.GET("/api/collections/:id", collectionsController.Get)
	router.GET("/api/collections/:id/tutorials", collectionsController.Tutorials)
	router.POST("/api/collections", collectionsController.Create)
	router.POST("/api/collections/:id/rematch", collectionsController.Rematch)
	router.PATCH("/api/collections/:id", collectionsController.Update)
	router.DELETE("/api/collections/:id", collectionsController.Delete)

	// Trash endpoints
	router.GET("/api/trash", trashController.List)
	router.POST("/api/trash/:id/restore", trashController.Restore)
	router.DELETE("/api/trash/:id", trashController.PermanentDelete)
	router.DELETE("/api/trash", trashController.Empty)

	// Shared markdown file endpoints
	router.GET("/api/shared-files", sharedFilesController.List)
	router.GET("/api/shared-files/:id/download", sharedFilesController.Download)
	router.DELETE("/api/shared-files/:id", sharedFilesController.Deactivate)

	// AI generation endpoint; answers 503 when no generator is configured
	generateController := NewGenerateController(cfg.Generator)
	router.POST("/api/tutorials/generate", generateController.Generate)

	return router
}
