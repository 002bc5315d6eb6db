package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
)

// NewToggleCommand creates the toggle command
func NewToggleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <n>...",
		Aliases: []string{"done"},
		Short:   "Mark todos as done, or not done again",
		Long: `Flip the completion state of the todos at the given positions.

Examples:
  # Mark the first todo as done
  todo toggle 1

  # Toggle several todos at once
  todo toggle 1 3 4`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: validateProject,
		RunE:    runToggle,
	}

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	list := session.List()

	// Resolve every position before changing anything
	indexes := make([]int, 0, len(args))
	for _, arg := range args {
		idx, err := cli.ParsePosition(arg, list.Len())
		if err != nil {
			return err
		}
		indexes = append(indexes, idx)
	}

	for _, idx := range indexes {
		if err := session.Toggle(idx); err != nil {
			return err
		}
		item, _ := list.Item(idx)
		state := "not done"
		if item.Completed {
			state = "done"
		}
		cli.PrintSuccess("Marked todo #%d as %s: %s", idx+1, state, item.Text)
	}

	return nil
}
