// Package http exposes the loopback control API the UI layer talks to.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nlfmt/huepick/internal/capture"
	"github.com/nlfmt/huepick/internal/database"
	"github.com/nlfmt/huepick/internal/historystore"
	"github.com/nlfmt/huepick/internal/settingsstore"
	"github.com/nlfmt/huepick/internal/windowstate"
)

// RouterConfig carries all controller dependencies. Keeps the router
// constructor testable and the wiring explicit.
type RouterConfig struct {
	Database    *database.Database
	Settings    *settingsstore.Store
	History     *historystore.Store
	WindowStore *windowstate.Store
	WindowSaver *windowstate.Saver
	Trigger     *capture.Trigger
	Displays    []windowstate.Display
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	settings := NewSettingsController(cfg.Settings)
	history := NewHistoryController(cfg.History)
	window := NewWindowController(cfg.WindowStore, cfg.WindowSaver, cfg.Displays)
	captureCtl := NewCaptureController(cfg.Trigger)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.GET("/settings", settings.List)
		api.GET("/settings/:key", settings.Get)
		api.PUT("/settings/:key", settings.Set)
		api.POST("/settings/reset", settings.Reset)

		api.GET("/history", history.List)
		api.POST("/history", history.Add)
		api.DELETE("/history", history.Clear)

		api.GET("/window", window.Get)
		api.PUT("/window", window.Put)

		api.POST("/capture", captureCtl.Arm)
		api.POST("/capture/confirm", captureCtl.Confirm)
		api.POST("/capture/cancel", captureCtl.Cancel)
		api.GET("/capture", captureCtl.State)
	}

	return router
}
