package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a todo to the end of the list",
		Long: `Add a new todo to the end of the list.

All arguments are joined with spaces. Blank text is ignored.
Text wrapped in ~~ on both ends is added as already done.

Examples:
  # Add a todo
  todo add buy milk

  # Add a todo that is already done
  todo add "~~file taxes~~"`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: validateProject,
		RunE:    runAdd,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	changed, err := session.Add(text)
	if err != nil {
		return err
	}
	if !changed {
		cli.PrintInfo("Nothing added: todo text is empty")
		return nil
	}

	cli.PrintSuccess("Added todo #%d: %s", session.List().Len(), strings.TrimSpace(text))
	return nil
}
