package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/cmd/commands"
	"github.com/pluqqy/todo-terminal/internal/cli"
	"github.com/pluqqy/todo-terminal/pkg/files"
	"github.com/pluqqy/todo-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Terminal todo list",
	Long:  `Todo keeps a simple ordered todo list in the current directory. Run it without arguments for the interactive TUI, or use the subcommands for one-shot changes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewCommandContext()
		if err := ctx.ValidateProject(); err != nil {
			return err
		}
		settings := ctx.LoadSettingsWithDefault()

		// The TUI owns the terminal, so logs go to the log file
		var logOut io.Writer = io.Discard
		if settings.Logging.File != "" {
			logFile, err := cli.OpenLogFile(files.ProjectPath(settings.Logging.File))
			if err != nil {
				return err
			}
			defer logFile.Close()
			logOut = logFile
		}
		logger := cli.NewLogger(logOut, settings.Logging)

		session, err := ctx.OpenSession(logger)
		if err != nil {
			return err
		}
		defer session.Close()

		app := tui.NewApp(session, settings, logger)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a todo list in the current directory",
	Long:  `Creates the .todo folder with default settings in the current directory`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		if files.ProjectExists() {
			cli.PrintInfo("Todo list already initialized in %s", cwd)
			return nil
		}

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created %s in %s", files.ProjectDir, cwd)
		cli.PrintInfo("Run 'todo' to start the interactive TUI.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of todo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todo version %s\n", version)
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	commands.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	commands.Register(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
