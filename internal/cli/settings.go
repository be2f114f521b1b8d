package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/nlfmt/huepick/internal/config"
	"github.com/nlfmt/huepick/internal/database"
	settingsrepo "github.com/nlfmt/huepick/internal/database/settings"
	"github.com/nlfmt/huepick/internal/settingsstore"
)

// SettingsCommand inspects and changes persisted settings.
type SettingsCommand struct {
	DatabasePath string

	action string
	key    string
	value  string
}

func NewSettingsCommand() *SettingsCommand {
	return &SettingsCommand{}
}

// ParseFlags parses command line flags
func (cmd *SettingsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s settings [options] <action>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Actions:\n")
		fmt.Fprintf(os.Stderr, "  list               Show every setting and its effective value\n")
		fmt.Fprintf(os.Stderr, "  get <key>          Show the effective value of one setting\n")
		fmt.Fprintf(os.Stderr, "  set <key> <value>  Change a setting\n")
		fmt.Fprintf(os.Stderr, "  reset              Restore every setting to its default\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s settings list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s settings set theme light\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s settings set max_history_records 50\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("no action given")
	}

	cmd.action = rest[0]
	switch cmd.action {
	case "list", "reset":
		if len(rest) != 1 {
			return fmt.Errorf("%s takes no arguments", cmd.action)
		}
	case "get":
		if len(rest) != 2 {
			return fmt.Errorf("get needs exactly one key")
		}
		cmd.key = rest[1]
	case "set":
		if len(rest) != 3 {
			return fmt.Errorf("set needs a key and a value")
		}
		cmd.key = rest[1]
		cmd.value = rest[2]
	default:
		return fmt.Errorf("unknown action %q", cmd.action)
	}
	return nil
}

// Run executes the settings command
func (cmd *SettingsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store := settingsstore.New(settingsrepo.NewRepository(db.DB))

	switch cmd.action {
	case "list":
		values := store.All()
		for _, key := range settingsstore.Keys() {
			def, _ := settingsstore.Lookup(key)
			marker := ""
			if values[key] != def.Default {
				marker = " (default: " + def.Default + ")"
			}
			fmt.Printf("%-24s %s%s\n", key, values[key], marker)
		}

	case "get":
		value, err := store.Get(cmd.key)
		if err != nil {
			return err
		}
		fmt.Println(value)

	case "set":
		if err := store.Set(cmd.key, cmd.value); err != nil {
			return err
		}
		value, _ := store.Get(cmd.key)
		fmt.Printf("%s = %s\n", cmd.key, value)

	case "reset":
		if err := store.ResetToDefaults(); err != nil {
			return err
		}
		fmt.Println("All settings restored to defaults")
	}
	return nil
}
