package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nlfmt/huepick/internal/capture"
	"github.com/nlfmt/huepick/internal/clipboard"
	"github.com/nlfmt/huepick/internal/config"
	"github.com/nlfmt/huepick/internal/database"
	historyrepo "github.com/nlfmt/huepick/internal/database/history"
	settingsrepo "github.com/nlfmt/huepick/internal/database/settings"
	windowrepo "github.com/nlfmt/huepick/internal/database/window"
	"github.com/nlfmt/huepick/internal/entities"
	"github.com/nlfmt/huepick/internal/historystore"
	"github.com/nlfmt/huepick/internal/hotkey"
	http_controllers "github.com/nlfmt/huepick/internal/http"
	"github.com/nlfmt/huepick/internal/notify"
	"github.com/nlfmt/huepick/internal/scheduler"
	"github.com/nlfmt/huepick/internal/settingsstore"
	"github.com/nlfmt/huepick/internal/utils"
	"github.com/nlfmt/huepick/internal/windowstate"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to flush pending writes)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Huepick v%s", version)

	// Ensure the database directory exists before gorm opens the file
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create database directory %s: %v", dir, err)
		}
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	settingsStore := settingsstore.New(settingsrepo.NewRepository(db.DB))
	settingsStore.Subscribe(func(key, value string) {
		log.Printf("Setting changed: %s = %s", key, value)
	})
	historyStore := historystore.New(historyrepo.NewRepository(db.DB), settingsStore)
	windowStore := windowstate.NewStore(windowrepo.NewRepository(db.DB))
	windowSaver := windowstate.NewSaver(windowStore, cfg.Window.SaveDebounce)

	// Pixel capture: native display APIs first, the platform screenshot
	// command as fallback for environments where they are unavailable.
	commandProvider := capture.NewCommandProvider()
	defer commandProvider.Close()
	trigger := capture.NewTrigger(capture.NewChain(capture.ScreenshotProvider{}, commandProvider))

	displays := capture.Displays()
	if len(displays) == 0 {
		log.Printf("WARNING: no active displays detected, window clamping disabled")
	}

	// Global hotkey arms the capture trigger. Registration failure is not
	// fatal; capture stays reachable through the API.
	var hotkeySource hotkey.Source
	if cfg.Hotkey.Enabled {
		source, err := hotkey.NewGlobalSource(cfg.Hotkey.Combo)
		if err != nil {
			log.Printf("WARNING: invalid hotkey combo %q: %v", cfg.Hotkey.Combo, err)
		} else if err := source.Start(); err != nil {
			log.Printf("WARNING: %v (capture remains available via the API)", err)
		} else {
			log.Printf("Global hotkey registered: %s", cfg.Hotkey.Combo)
			hotkeySource = source
			defer source.Stop()
		}
	}

	// Capture event loop: hotkey presses arm the trigger, confirmed
	// captures are recorded, copied, and announced per the settings.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	go runCaptureLoop(loopCtx, hotkeySource, trigger, settingsStore, historyStore, clipboard.System{}, notify.Desktop{AppName: "Huepick"})

	pruner := scheduler.NewHistoryPruneScheduler(historyStore, cfg.History.PruneSchedule)
	if err := pruner.Start(context.Background()); err != nil {
		log.Printf("WARNING: history prune scheduler not started: %v", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		Settings:    settingsStore,
		History:     historyStore,
		WindowStore: windowStore,
		WindowSaver: windowSaver,
		Trigger:     trigger,
		Displays:    displays,
		Version:     version,
	})

	onShutdown := func(ctx context.Context) {
		stopLoop()
		pruner.Stop()
		if err := windowSaver.Flush(); err != nil {
			log.Printf("Error flushing window state: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}

// runCaptureLoop drains hotkey presses and capture events until the
// context is cancelled. All side effects of a capture happen here, on a
// single goroutine.
func runCaptureLoop(
	ctx context.Context,
	source hotkey.Source,
	trigger *capture.Trigger,
	settings *settingsstore.Store,
	history *historystore.Store,
	sink clipboard.Sink,
	notifier notify.Notifier,
) {
	var presses <-chan struct{}
	if source != nil {
		presses = source.Presses()
	}

	for {
		select {
		case <-presses:
			if settings.ScreenPickerEnabled() {
				trigger.Arm()
			}
		case event := <-trigger.Events():
			handleCaptured(event, settings, history, sink, notifier)
		case <-ctx.Done():
			return
		}
	}
}

func handleCaptured(
	event capture.Captured,
	settings *settingsstore.Store,
	history *historystore.Store,
	sink clipboard.Sink,
	notifier notify.Notifier,
) {
	c := event.Color
	var hex string
	if settings.UseAlpha() {
		hex = utils.FormatHexColorA(c.R, c.G, c.B, c.A)
	} else {
		hex = utils.FormatHexColor(c.R, c.G, c.B)
	}

	if settings.AutoSaveHistory() {
		if _, err := history.Add(hex, event.At, entities.CaptureSourceScreenPicker); err != nil && !errors.Is(err, historystore.ErrNotRecorded) {
			log.Printf("Error recording captured color: %v", err)
		}
	}

	if settings.AutoCopy() {
		if err := sink.WriteText(hex); err != nil {
			log.Printf("Error copying color to clipboard: %v", err)
		}
	}

	if settings.ShowNotifications() {
		if err := notifier.Notify("Color captured", hex); err != nil {
			log.Printf("Error showing notification: %v", err)
		}
	}
}
