package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/todo-terminal/pkg/storage"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateBackend validates a storage backend name
func ValidateBackend(backend string) error {
	switch strings.ToLower(backend) {
	case storage.BackendFile, storage.BackendSQLite:
		return nil
	}
	return fmt.Errorf("invalid storage backend: %s (must be: file or sqlite)", backend)
}

// ParsePosition converts a 1-based position as printed by 'todo list' into
// a list index
func ParsePosition(arg string, length int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: must be a number", arg)
	}
	if length == 0 {
		return 0, fmt.Errorf("the todo list is empty")
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("position %d out of range (1-%d)", n, length)
	}
	return n - 1, nil
}
