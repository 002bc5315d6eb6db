package models

// Settings represents the application configuration
type Settings struct {
	Storage StorageSettings `yaml:"storage" json:"storage"`
	UI      UISettings      `yaml:"ui" json:"ui"`
	Logging LoggingSettings `yaml:"logging" json:"logging"`
}

// StorageSettings selects where the todo list is persisted
type StorageSettings struct {
	Backend string `yaml:"backend" json:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path" json:"path"`       // relative to the project directory
}

// UISettings controls UI preferences
type UISettings struct {
	ConfirmDelete bool `yaml:"confirm_delete" json:"confirm_delete"`
	ShowHelp      bool `yaml:"show_help" json:"show_help"`
	WrapWidth     int  `yaml:"wrap_width" json:"wrap_width"` // 0 wraps at the terminal width
}

// LoggingSettings controls the application logger
type LoggingSettings struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text, json, logfmt
	File   string `yaml:"file" json:"file"`     // TUI log file, relative to the project directory
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{
			Backend: "file",
			Path:    "storage.json",
		},
		UI: UISettings{
			ConfirmDelete: true,
			ShowHelp:      true,
			WrapWidth:     0,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "text",
			File:   "todo.log",
		},
	}
}
