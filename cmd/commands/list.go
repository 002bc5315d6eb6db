package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
	"github.com/pluqqy/todo-terminal/pkg/models"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Count     int        `json:"count" yaml:"count"`
	Completed int        `json:"completed" yaml:"completed"`
	Items     []ListItem `json:"items" yaml:"items"`
}

// ListItem represents a single todo in the list
type ListItem struct {
	Position  int    `json:"position" yaml:"position"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

var (
	listRaw     bool
	listPending bool
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos",
		Long: `List all todos with the position used by edit, toggle, delete and copy.

Examples:
  # List all todos
  todo list

  # List todos as JSON
  todo list -o json

  # Show only todos that are not done
  todo list --pending

  # Print the stored strings, one per line
  todo list --raw`,
		Args:    cobra.NoArgs,
		PreRunE: validateProject,
		RunE:    runList,
	}

	cmd.Flags().BoolVar(&listRaw, "raw", false, "Print stored todo strings, completion markers included")
	cmd.Flags().BoolVar(&listPending, "pending", false, "Show only todos that are not done")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	list := session.List()
	out := cmd.OutOrStdout()

	if listRaw {
		for _, raw := range list.Raw() {
			fmt.Fprintln(out, raw)
		}
		return nil
	}

	result := buildListResult(list.Items(), listPending)

	switch format := outputFormat(cmd); format {
	case "json", "yaml":
		return cli.OutputResults(out, format, result)
	default:
		return outputListText(cmd, result)
	}
}

func buildListResult(items []models.Todo, pendingOnly bool) ListResult {
	result := ListResult{Items: []ListItem{}}
	for i, item := range items {
		if item.Completed {
			result.Completed++
		}
		if pendingOnly && item.Completed {
			continue
		}
		result.Items = append(result.Items, ListItem{
			Position:  i + 1,
			Text:      item.Text,
			Completed: item.Completed,
		})
	}
	result.Count = len(items)
	return result
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	out := cmd.OutOrStdout()

	if result.Count == 0 {
		fmt.Fprintln(out, "No todos yet. Add one with 'todo add <text>'.")
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("#", "DONE", "TODO")
	for _, item := range result.Items {
		done := "[ ]"
		if item.Completed {
			done = "[x]"
		}
		table.Row(strconv.Itoa(item.Position), done, cli.TruncateString(item.Text, 60))
	}
	table.Flush()

	fmt.Fprintf(out, "\n%d todos, %d done\n", result.Count, result.Completed)
	return nil
}
