package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pluqqy/todo-terminal/pkg/files"
	"github.com/pluqqy/todo-terminal/pkg/models"
	"github.com/pluqqy/todo-terminal/pkg/storage"
	"github.com/pluqqy/todo-terminal/pkg/todos"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Logger      *log.Logger
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.ProjectDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'todo init' first", files.ProjectDir)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// CommandLogger returns a stderr logger configured from the settings
func (c *CommandContext) CommandLogger() *log.Logger {
	if c.Logger == nil {
		c.Logger = NewLogger(os.Stderr, c.LoadSettingsWithDefault().Logging)
	}
	return c.Logger
}

// OpenSession opens the configured store and hydrates the todo list from it
func (c *CommandContext) OpenSession(logger *log.Logger) (*todos.Session, error) {
	if err := c.ValidateProject(); err != nil {
		return nil, err
	}

	settings := c.LoadSettingsWithDefault()
	path := files.ProjectPath(settings.Storage.Path)

	store, err := storage.Open(settings.Storage.Backend, path)
	if err != nil {
		return nil, err
	}

	session, err := todos.Open(store, todos.WithLogger(logger))
	if err != nil {
		store.Close()
		return nil, err
	}

	logger.Debug("opened todo storage", "backend", settings.Storage.Backend, "path", path)
	return session, nil
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// Command builds the editor invocation for a file
func (e *EditorLauncher) Command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) > 1 {
		return exec.Command(parts[0], append(parts[1:], path)...)
	}
	return exec.Command(e.DefaultEditor, path)
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	editorCmd := e.Command(path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

// EditText lets the user edit text in the editor and returns the result.
// A single trailing newline added by the editor is dropped.
func (e *EditorLauncher) EditText(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "todo-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmpFile.Name()
	defer os.Remove(name)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := e.OpenFile(name); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read edited text: %w", err)
	}

	text := strings.TrimSuffix(string(edited), "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
