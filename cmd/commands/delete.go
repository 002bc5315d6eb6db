package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
)

var (
	deleteForce bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <n>",
		Aliases: []string{"rm"},
		Short:   "Delete a todo",
		Long: `Permanently delete the todo at position n (as shown by 'todo list').

Later todos move up by one position. This action cannot be undone.

Examples:
  # Delete the third todo (with confirmation)
  todo delete 3

  # Force delete without confirmation
  todo delete 3 --force`,
		Args:    cobra.ExactArgs(1),
		PreRunE: validateProject,
		RunE:    runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	list := session.List()
	idx, err := cli.ParsePosition(args[0], list.Len())
	if err != nil {
		return err
	}
	item, err := list.Item(idx)
	if err != nil {
		return err
	}

	if !deleteForce {
		prompt := fmt.Sprintf("Delete todo #%d '%s'? This cannot be undone.", idx+1, cli.TruncateString(item.Text, 50))
		confirmed, err := cli.Confirm(prompt, false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := session.Delete(idx); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	cli.PrintSuccess("Deleted todo #%d: %s", idx+1, item.Text)
	return nil
}
