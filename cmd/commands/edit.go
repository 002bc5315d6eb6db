package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <n> [text...]",
		Short: "Replace the text of a todo",
		Long: `Replace the text of the todo at position n (as shown by 'todo list').

The new text is taken as-is: wrap it in ~~ on both ends to keep the
todo done, or leave the markers off to reopen it. Without text the
current value, markers included, is opened in $EDITOR.

Examples:
  # Replace the text of the second todo
  todo edit 2 buy oat milk

  # Edit the first todo in your editor
  todo edit 1`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: validateProject,
		RunE:    runEdit,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	if err := session.BeginEdit(idx); err != nil {
		return err
	}

	var text string
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	} else {
		text, err = cli.NewEditorLauncher().EditText(list.EditText())
		if err != nil {
			session.CancelEdit()
			return err
		}
		if text == list.EditText() {
			session.CancelEdit()
			cli.PrintInfo("No changes made to todo #%d", idx+1)
			return nil
		}
	}

	list.SetEditText(text)
	if err := session.CommitEdit(idx); err != nil {
		return err
	}

	cli.PrintSuccess("Updated todo #%d", idx+1)
	return nil
}
