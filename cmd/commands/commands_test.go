package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/todo-terminal/internal/cli"
	"github.com/pluqqy/todo-terminal/pkg/files"
	"github.com/pluqqy/todo-terminal/pkg/storage"
)

// setupProject switches into a fresh directory, initialized unless init is false
func setupProject(t *testing.T, init bool) {
	t.Helper()
	tempDir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { os.Chdir(oldDir) })

	if init {
		require.NoError(t, files.InitProjectStructure())
	}
}

// execute runs the command tree with args, feeding stdin to prompts
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "todo", SilenceUsage: true, SilenceErrors: true}
	AddGlobalFlags(root)
	Register(root)

	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	cli.SetStreams(strings.NewReader(stdin), out, out)
	t.Cleanup(func() {
		cli.SetStreams(os.Stdin, os.Stdout, os.Stderr)
		cli.SetGlobalFlags(false, false, false)
	})

	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, "", args...)
	require.NoError(t, err, out)
	return out
}

func storedRaw(t *testing.T) []string {
	t.Helper()
	out := mustExecute(t, "export")
	var raw []string
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	return raw
}

func TestCommandsRequireProject(t *testing.T) {
	setupProject(t, false)

	for _, args := range [][]string{
		{"add", "x"},
		{"list"},
		{"edit", "1", "x"},
		{"toggle", "1"},
		{"delete", "1"},
		{"copy", "1"},
		{"export"},
		{"config"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := execute(t, "", args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "todo init")
		})
	}
}

func TestAddCommand(t *testing.T) {
	setupProject(t, true)

	out := mustExecute(t, "add", "buy", "milk")
	assert.Contains(t, out, "Added todo #1: buy milk")

	mustExecute(t, "add", "~~call mom~~")
	assert.Equal(t, []string{"buy milk", "~~call mom~~"}, storedRaw(t))

	// stored in the file backend under the todos key
	data, err := os.ReadFile(filepath.Join(files.ProjectDir, "storage.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"todos": "[\"buy milk\",\"~~call mom~~\"]"}`, string(data))
}

func TestAddBlankIsIgnored(t *testing.T) {
	setupProject(t, true)

	out := mustExecute(t, "add", "   ")
	assert.Contains(t, out, "Nothing added")

	_, err := os.Stat(filepath.Join(files.ProjectDir, "storage.json"))
	assert.True(t, os.IsNotExist(err), "a blank add must not write")
}

func TestQuietFlag(t *testing.T) {
	setupProject(t, true)

	out := mustExecute(t, "--quiet", "add", "silent")
	assert.Empty(t, out)
	assert.Equal(t, []string{"silent"}, storedRaw(t))
}

func TestListCommand(t *testing.T) {
	setupProject(t, true)

	t.Run("empty", func(t *testing.T) {
		out := mustExecute(t, "list")
		assert.Contains(t, out, "No todos yet")
	})

	mustExecute(t, "add", "buy milk")
	mustExecute(t, "add", "~~call mom~~")

	t.Run("text", func(t *testing.T) {
		out := mustExecute(t, "list")
		assert.Contains(t, out, "DONE")
		assert.Contains(t, out, "buy milk")
		assert.Contains(t, out, "[x]")
		assert.Contains(t, out, "call mom")
		assert.NotContains(t, out, "~~")
		assert.Contains(t, out, "2 todos, 1 done")
	})

	t.Run("json", func(t *testing.T) {
		out := mustExecute(t, "list", "-o", "json")
		var result ListResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, 1, result.Completed)
		assert.Equal(t, []ListItem{
			{Position: 1, Text: "buy milk"},
			{Position: 2, Text: "call mom", Completed: true},
		}, result.Items)
	})

	t.Run("yaml", func(t *testing.T) {
		out := mustExecute(t, "list", "-o", "yaml")
		assert.Contains(t, out, "text: buy milk")
		assert.Contains(t, out, "completed: true")
	})

	t.Run("pending", func(t *testing.T) {
		out := mustExecute(t, "list", "--pending", "-o", "json")
		var result ListResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Len(t, result.Items, 1)
		assert.Equal(t, "buy milk", result.Items[0].Text)
	})

	t.Run("raw", func(t *testing.T) {
		out := mustExecute(t, "list", "--raw")
		assert.Equal(t, "buy milk\n~~call mom~~\n", out)
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, err := execute(t, "", "list", "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}

func TestToggleCommand(t *testing.T) {
	setupProject(t, true)
	mustExecute(t, "add", "a")
	mustExecute(t, "add", "b")

	out := mustExecute(t, "toggle", "1")
	assert.Contains(t, out, "Marked todo #1 as done: a")
	assert.Equal(t, []string{"~~a~~", "b"}, storedRaw(t))

	mustExecute(t, "toggle", "1", "2")
	assert.Equal(t, []string{"a", "~~b~~"}, storedRaw(t))

	t.Run("out of range changes nothing", func(t *testing.T) {
		_, err := execute(t, "", "toggle", "1", "3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range (1-2)")
		assert.Equal(t, []string{"a", "~~b~~"}, storedRaw(t))
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := execute(t, "", "toggle", "first")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a number")
	})
}

func TestEditCommand(t *testing.T) {
	setupProject(t, true)
	mustExecute(t, "add", "buy milk")
	mustExecute(t, "add", "~~call mom~~")

	out := mustExecute(t, "edit", "1", "buy", "oat", "milk")
	assert.Contains(t, out, "Updated todo #1")
	assert.Equal(t, []string{"buy oat milk", "~~call mom~~"}, storedRaw(t))

	// text without markers reopens a done todo
	mustExecute(t, "edit", "2", "call dad")
	assert.Equal(t, []string{"buy oat milk", "call dad"}, storedRaw(t))

	mustExecute(t, "edit", "1", "~~buy oat milk~~")
	assert.Equal(t, []string{"~~buy oat milk~~", "call dad"}, storedRaw(t))

	_, err := execute(t, "", "edit", "3", "nope")
	require.Error(t, err)
}

func TestDeleteCommand(t *testing.T) {
	setupProject(t, true)
	mustExecute(t, "add", "a")
	mustExecute(t, "add", "b")
	mustExecute(t, "add", "c")

	t.Run("declined", func(t *testing.T) {
		out, err := execute(t, "n\n", "delete", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Delete todo #2 'b'?")
		assert.Contains(t, out, "Deletion cancelled")
		assert.Equal(t, []string{"a", "b", "c"}, storedRaw(t))
	})

	t.Run("confirmed", func(t *testing.T) {
		out, err := execute(t, "y\n", "delete", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted todo #2: b")
		assert.Equal(t, []string{"a", "c"}, storedRaw(t))
	})

	t.Run("force", func(t *testing.T) {
		out, err := execute(t, "", "delete", "--force", "2")
		require.NoError(t, err)
		assert.NotContains(t, out, "?")
		assert.Equal(t, []string{"a"}, storedRaw(t))
	})

	t.Run("yes flag", func(t *testing.T) {
		_, err := execute(t, "", "--yes", "delete", "1")
		require.NoError(t, err)
		assert.Equal(t, []string{}, storedRaw(t))
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := execute(t, "", "delete", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})
}

func TestClipboardCommand(t *testing.T) {
	setupProject(t, true)
	mustExecute(t, "add", "~~call mom~~")

	var copied []string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	out := mustExecute(t, "copy", "1")
	assert.Contains(t, out, "Copied todo #1 to clipboard")

	mustExecute(t, "clip", "1", "--raw")
	assert.Equal(t, []string{"call mom", "~~call mom~~"}, copied)
}

func TestExportCommand(t *testing.T) {
	setupProject(t, true)
	mustExecute(t, "add", "a")
	mustExecute(t, "toggle", "1")

	out := mustExecute(t, "export")
	assert.Equal(t, "[\"~~a~~\"]\n", out)

	mustExecute(t, "export", "--file", "out.json")
	data, err := os.ReadFile("out.json")
	require.NoError(t, err)
	raw, err := storage.DecodeTodos(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"~~a~~"}, raw)
}

func TestConfigCommand(t *testing.T) {
	setupProject(t, true)

	t.Run("show", func(t *testing.T) {
		out := mustExecute(t, "config")
		assert.Contains(t, out, "backend: file")
		assert.Contains(t, out, "confirm_delete: true")
	})

	t.Run("show json", func(t *testing.T) {
		out := mustExecute(t, "config", "-o", "json")
		assert.Contains(t, out, `"backend": "file"`)
	})

	t.Run("set", func(t *testing.T) {
		mustExecute(t, "config", "set", "ui.confirm_delete", "false")
		mustExecute(t, "config", "set", "logging.level", "debug")
		settings, err := files.ReadSettings()
		require.NoError(t, err)
		assert.False(t, settings.UI.ConfirmDelete)
		assert.Equal(t, "debug", settings.Logging.Level)
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			key, value, want string
		}{
			{"storage.backend", "redis", "invalid storage backend"},
			{"ui.show_help", "maybe", "must be true or false"},
			{"ui.wrap_width", "-1", "must be a number"},
			{"ui.wrap_width", "wide", "must be a number"},
			{"logging.level", "loud", "invalid value"},
			{"logging.format", "xml", "invalid value"},
			{"colour", "red", "unknown setting"},
		}
		for _, tt := range tests {
			// "--" keeps negative numbers from being read as flags
			_, err := execute(t, "", "config", "set", "--", tt.key, tt.value)
			require.Error(t, err, tt.key)
			assert.Contains(t, err.Error(), tt.want)
		}
	})
}

func TestSQLiteBackend(t *testing.T) {
	setupProject(t, true)
	mustExecute(t, "config", "set", "storage.backend", "sqlite")

	settings, err := files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, "storage.db", settings.Storage.Path, "default path follows the backend")

	mustExecute(t, "add", "stored in sqlite")
	mustExecute(t, "toggle", "1")

	assert.Equal(t, []string{"~~stored in sqlite~~"}, storedRaw(t))
	_, err = os.Stat(filepath.Join(files.ProjectDir, "storage.db"))
	assert.NoError(t, err)
}

func TestConfigBackendKeepsCustomPath(t *testing.T) {
	setupProject(t, true)
	mustExecute(t, "config", "set", "storage.path", "work.db")
	mustExecute(t, "config", "set", "storage.backend", "sqlite")

	settings, err := files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", settings.Storage.Backend)
	assert.Equal(t, "work.db", settings.Storage.Path)

	mustExecute(t, "config", "set", "storage.backend", "file")
	mustExecute(t, "config", "set", "storage.path", "storage.db")
	mustExecute(t, "config", "set", "storage.backend", "sqlite")
	mustExecute(t, "config", "set", "storage.backend", "file")

	settings, err = files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, "storage.json", settings.Storage.Path)
}

func TestMalformedStorageIsFatal(t *testing.T) {
	setupProject(t, true)
	path := filepath.Join(files.ProjectDir, "storage.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"todos": "{\"not\": \"a list\"}"}`), 0644))

	_, err := execute(t, "", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrMalformed)

	_, err = execute(t, "", "add", "x")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "not", "bad data is left in place")
}
