package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"sastarapido/internal/handler"
	"sastarapido/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	EstimateHandler *handler.EstimateHandler
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	router := gin.New()

	templates, err := handler.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
		router.Use(middleware.NoticeErrors())
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Estimate pages.
	router.GET("/", deps.EstimateHandler.Form)
	router.POST("/estimate", deps.EstimateHandler.CreateEstimate)
	estimates := router.Group("/estimates")
	{
		estimates.GET("/:id", deps.EstimateHandler.GetEstimate)
		estimates.GET("/:id/csv", deps.EstimateHandler.ExportCSV)
	}

	return router, nil
}
