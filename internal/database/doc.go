// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── settings/        # Key/value application settings
//	├── history/         # Picked color history with capacity trimming
//	└── window/          # Singleton window geometry row
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./huepick.db")
//
//	// Create domain-specific repositories
//	settingsRepo := settings.NewRepository(db.DB)
//	historyRepo := history.NewRepository(db.DB)
//	windowRepo := window.NewRepository(db.DB)
package database
