package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/todo-terminal/pkg/models"
)

const (
	ProjectDir   = ".todo"
	SettingsFile = "settings.yaml"
)

// InitProjectStructure creates the project directory and writes default
// settings unless a settings file is already there
func InitProjectStructure() error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ProjectDir, err)
	}

	if _, err := os.Stat(SettingsPath()); err == nil {
		return nil
	}

	return WriteSettings(models.DefaultSettings())
}

// ProjectExists reports whether the project directory is present
func ProjectExists() bool {
	info, err := os.Stat(ProjectDir)
	return err == nil && info.IsDir()
}

// SettingsPath returns the location of the settings file
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// ReadSettings loads settings, filling anything the file leaves out with defaults
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings saves settings to the project directory
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// ProjectPath resolves a path from the settings relative to the project
// directory. Absolute paths and ":memory:" pass through.
func ProjectPath(path string) string {
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ProjectDir, path)
}
