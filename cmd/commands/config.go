package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
	"github.com/pluqqy/todo-terminal/pkg/files"
	"github.com/pluqqy/todo-terminal/pkg/models"
	"github.com/pluqqy/todo-terminal/pkg/storage"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change project settings",
		Long: `Show the settings in .todo/settings.yaml, or change one of them.

Keys:
  storage.backend      file or sqlite
  storage.path         store location, relative to .todo/
  ui.confirm_delete    ask before deleting in the TUI (true/false)
  ui.show_help         show the key help footer (true/false)
  ui.wrap_width        wrap long todos at this width, 0 for the terminal width
  logging.level        debug, info, warn or error
  logging.format       text, json or logfmt
  logging.file         TUI log file, relative to .todo/

Examples:
  # Show the current settings
  todo config

  # Store todos in SQLite
  todo config set storage.backend sqlite
  todo config set storage.path storage.db`,
		Args:    cobra.NoArgs,
		PreRunE: validateProject,
		RunE:    runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Change a setting",
		Args:    cobra.ExactArgs(2),
		PreRunE: validateProject,
		RunE:    runConfigSet,
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	format := outputFormat(cmd)
	if format == "text" {
		format = "yaml"
	}
	return cli.OutputResults(cmd.OutOrStdout(), format, settings)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	key, value := strings.ToLower(args[0]), args[1]
	if err := applySetting(settings, key, value); err != nil {
		return err
	}

	if err := files.WriteSettings(settings); err != nil {
		return err
	}

	cli.PrintSuccess("Set %s = %s", key, value)
	return nil
}

var defaultStoragePaths = map[string]string{
	storage.BackendFile:   "storage.json",
	storage.BackendSQLite: "storage.db",
}

func applySetting(settings *models.Settings, key, value string) error {
	switch key {
	case "storage.backend":
		if err := cli.ValidateBackend(value); err != nil {
			return err
		}
		backend := strings.ToLower(value)
		// a path left at the other backend's default would point at the wrong kind of file
		for _, def := range defaultStoragePaths {
			if settings.Storage.Path == def {
				settings.Storage.Path = defaultStoragePaths[backend]
				break
			}
		}
		settings.Storage.Backend = backend
	case "storage.path":
		if value == "" {
			return fmt.Errorf("storage.path cannot be empty")
		}
		settings.Storage.Path = value
	case "ui.confirm_delete", "ui.show_help":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q (must be true or false)", key, value)
		}
		if key == "ui.confirm_delete" {
			settings.UI.ConfirmDelete = b
		} else {
			settings.UI.ShowHelp = b
		}
	case "ui.wrap_width":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value for %s: %q (must be a number >= 0)", key, value)
		}
		settings.UI.WrapWidth = n
	case "logging.level":
		if _, err := log.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid value for %s: %q (must be: debug, info, warn, or error)", key, value)
		}
		settings.Logging.Level = strings.ToLower(value)
	case "logging.format":
		switch strings.ToLower(value) {
		case "text", "json", "logfmt":
			settings.Logging.Format = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid value for %s: %q (must be: text, json, or logfmt)", key, value)
		}
	case "logging.file":
		settings.Logging.File = value
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}
