package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pluqqy/todo-terminal/pkg/models"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	if ProjectExists() {
		t.Fatal("project should not exist before init")
	}

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	if !ProjectExists() {
		t.Errorf("Expected directory %s does not exist", ProjectDir)
	}
	if _, err := os.Stat(SettingsPath()); err != nil {
		t.Errorf("Expected settings file: %v", err)
	}
}

func TestInitKeepsExistingSettings(t *testing.T) {
	chdirTemp(t)

	custom := models.DefaultSettings()
	custom.Storage.Backend = "sqlite"
	if err := WriteSettings(custom); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.Storage.Backend != "sqlite" {
		t.Errorf("init overwrote settings: backend = %q", settings.Storage.Backend)
	}
}

func TestReadSettingsFillsDefaults(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := "ui:\n  confirm_delete: false\n"
	if err := os.WriteFile(SettingsPath(), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.UI.ConfirmDelete {
		t.Error("confirm_delete should be read from the file")
	}
	if settings.Storage.Backend != "file" || settings.Storage.Path != "storage.json" {
		t.Errorf("storage defaults missing: %+v", settings.Storage)
	}
	if settings.Logging.Level != "info" {
		t.Errorf("logging defaults missing: %+v", settings.Logging)
	}
}

func TestReadSettingsInvalid(t *testing.T) {
	chdirTemp(t)

	if _, err := ReadSettings(); err == nil {
		t.Error("expected error when settings file is missing")
	}

	os.MkdirAll(ProjectDir, 0755)
	os.WriteFile(SettingsPath(), []byte("ui: [unclosed"), 0644)
	if _, err := ReadSettings(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestProjectPath(t *testing.T) {
	abs, _ := filepath.Abs("/tmp/todos.json")
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"relative", "storage.json", filepath.Join(ProjectDir, "storage.json")},
		{"absolute", abs, abs},
		{"memory", ":memory:", ":memory:"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectPath(tt.input); got != tt.expected {
				t.Errorf("ProjectPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
