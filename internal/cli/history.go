package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/nlfmt/huepick/internal/config"
	"github.com/nlfmt/huepick/internal/database"
	historyrepo "github.com/nlfmt/huepick/internal/database/history"
	settingsrepo "github.com/nlfmt/huepick/internal/database/settings"
	"github.com/nlfmt/huepick/internal/historystore"
	"github.com/nlfmt/huepick/internal/settingsstore"
)

// HistoryCommand inspects and clears the color history.
type HistoryCommand struct {
	DatabasePath string
	Limit        int

	action string
}

func NewHistoryCommand() *HistoryCommand {
	return &HistoryCommand{}
}

// ParseFlags parses command line flags
func (cmd *HistoryCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.IntVar(&cmd.Limit, "limit", 0, "Maximum entries to show (0 shows everything)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s history [options] <action>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Actions:\n")
		fmt.Fprintf(os.Stderr, "  list   Show recorded colors, most recent first\n")
		fmt.Fprintf(os.Stderr, "  clear  Delete all recorded colors\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one action")
	}

	cmd.action = rest[0]
	if cmd.action != "list" && cmd.action != "clear" {
		return fmt.Errorf("unknown action %q", cmd.action)
	}
	return nil
}

// Run executes the history command
func (cmd *HistoryCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	settings := settingsstore.New(settingsrepo.NewRepository(db.DB))
	store := historystore.New(historyrepo.NewRepository(db.DB), settings)

	switch cmd.action {
	case "list":
		entries, err := store.List(cmd.Limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No colors recorded")
			return nil
		}
		for _, entry := range entries {
			source := entry.Source
			if source == "" {
				source = "-"
			}
			fmt.Printf("%-10s %-14s %s\n", entry.Color, source, entry.CapturedAt.Local().Format("2006-01-02 15:04:05"))
		}

	case "clear":
		count, err := store.Count()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Printf("Removed %d entries\n", count)
	}
	return nil
}
