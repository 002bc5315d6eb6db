package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/todo-terminal/internal/cli"
	"github.com/pluqqy/todo-terminal/pkg/storage"
)

var (
	exportToFile string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the todo list in its stored form",
		Long: `Export the todo list as the JSON array of strings it is stored as.

Done todos keep their ~~ markers, so the output can be loaded back by
any backend.

Examples:
  # Export to stdout
  todo export

  # Export to a file
  todo export --file todos.json`,
		Args:    cobra.NoArgs,
		PreRunE: validateProject,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	data, err := storage.EncodeTodos(session.List().Raw())
	if err != nil {
		return err
	}

	if exportToFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(exportToFile, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	cli.PrintSuccess("Exported %d todos to %s", session.List().Len(), exportToFile)
	return nil
}
