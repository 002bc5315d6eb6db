package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
)

var (
	clipboardRaw bool

	// writeClipboard is swapped out in tests
	writeClipboard = clipboard.WriteAll
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <n>",
		Short: "Copy a todo to the clipboard",
		Long: `Copy the text of the todo at position n to the system clipboard.

Examples:
  # Copy the first todo
  todo copy 1

  # Copy the stored form, completion markers included
  todo copy 2 --raw`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		PreRunE: validateProject,
		RunE:    runClipboard,
	}

	cmd.Flags().BoolVar(&clipboardRaw, "raw", false, "Copy the stored form including completion markers")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
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

	content := item.Text
	if clipboardRaw {
		content = item.Raw()
	}

	if err := writeClipboard(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied todo #%d to clipboard (%d characters)", idx+1, len(content))
	return nil
}
