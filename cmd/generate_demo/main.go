// Command generate_demo creates a demo database with a sample color
// history and non-default settings.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/nlfmt/huepick/internal/database"
	historyrepo "github.com/nlfmt/huepick/internal/database/history"
	settingsrepo "github.com/nlfmt/huepick/internal/database/settings"
	windowrepo "github.com/nlfmt/huepick/internal/database/window"
	"github.com/nlfmt/huepick/internal/entities"
	"github.com/nlfmt/huepick/internal/historystore"
	"github.com/nlfmt/huepick/internal/settingsstore"
	"github.com/nlfmt/huepick/internal/windowstate"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	settings := settingsstore.New(settingsrepo.NewRepository(db.DB))
	history := historystore.New(historyrepo.NewRepository(db.DB), settings)
	window := windowstate.NewStore(windowrepo.NewRepository(db.DB))

	applyDemoSettings(settings)
	seedHistory(history)

	if err := window.Save(entities.WindowState{X: 200, Y: 150, Width: 420, Height: 560}); err != nil {
		log.Printf("Failed to save window state: %v", err)
	}

	log.Println("Demo database generated successfully!")
}

func applyDemoSettings(settings *settingsstore.Store) {
	values := map[string]string{
		entities.SettingKeyTheme:             settingsstore.ThemeLight,
		entities.SettingKeyMaxHistoryRecords: "50",
	}
	for key, value := range values {
		if err := settings.Set(key, value); err != nil {
			log.Printf("Failed to set %s: %v", key, err)
			continue
		}
		log.Printf("Set %s = %s", key, value)
	}
}

func seedHistory(history *historystore.Store) {
	// A spread of recognizable colors, oldest first so the list reads
	// newest-first in the UI.
	colors := []struct {
		color  string
		source string
	}{
		{"#264653", entities.CaptureSourceScreenPicker},
		{"#2A9D8F", entities.CaptureSourceScreenPicker},
		{"#E9C46A", entities.CaptureSourceColorDialog},
		{"#F4A261", entities.CaptureSourceScreenPicker},
		{"#E76F51", entities.CaptureSourceManual},
		{"#606C38", entities.CaptureSourceScreenPicker},
		{"#283618", entities.CaptureSourceScreenPicker},
		{"#FEFAE0", entities.CaptureSourceColorDialog},
		{"#DDA15E", entities.CaptureSourceScreenPicker},
		{"#BC6C25", entities.CaptureSourceScreenPicker},
		{"#003049", entities.CaptureSourceScreenPicker},
		{"#D62828", entities.CaptureSourceManual},
		{"#F77F00", entities.CaptureSourceScreenPicker},
		{"#FCBF49", entities.CaptureSourceScreenPicker},
		{"#EAE2B7", entities.CaptureSourceColorDialog},
	}

	base := time.Now().Add(-time.Duration(len(colors)) * time.Hour)
	for i, c := range colors {
		capturedAt := base.Add(time.Duration(i) * time.Hour)
		if _, err := history.Add(c.color, capturedAt, c.source); err != nil {
			log.Printf("Failed to add %s: %v", c.color, err)
			continue
		}
		log.Printf("Added: %s (%s)", c.color, c.source)
	}
}
