package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
	"github.com/pluqqy/todo-terminal/pkg/todos"
)

// AddGlobalFlags registers the flags shared by every subcommand
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().Bool("no-color", false, "Disable symbols and colors in messages")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to every confirmation")
	cmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		noColor, _ := cmd.Flags().GetBool("no-color")
		yes, _ := cmd.Flags().GetBool("yes")
		cli.SetGlobalFlags(quiet, noColor, yes)
		return cli.ValidateOutputFormat(outputFormat(cmd))
	}
}

// Register adds every todo subcommand to root
func Register(root *cobra.Command) {
	root.AddCommand(
		NewAddCommand(),
		NewListCommand(),
		NewEditCommand(),
		NewToggleCommand(),
		NewDeleteCommand(),
		NewClipboardCommand(),
		NewExportCommand(),
		NewConfigCommand(),
	)
}

// validateProject is the PreRunE of commands that need an initialized project
func validateProject(cmd *cobra.Command, args []string) error {
	return cli.NewCommandContext().ValidateProject()
}

// openSession loads settings and hydrates the todo list for a command
func openSession() (*todos.Session, error) {
	ctx := cli.NewCommandContext()
	return ctx.OpenSession(ctx.CommandLogger())
}

func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return "text"
	}
	return strings.ToLower(format)
}
