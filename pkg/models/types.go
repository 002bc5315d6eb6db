package models

import (
	"strings"

	"github.com/google/uuid"
)

// CompletionMarker wraps the raw text of a completed todo on both ends
const CompletionMarker = "~~"

// Todo is a single entry of the todo list
type Todo struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// NewTodo creates a todo with a fresh identifier from its raw text
func NewTodo(raw string) Todo {
	text, completed := ParseRaw(raw)
	return Todo{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: completed,
	}
}

// ParseRaw splits a raw todo string into its text and completion state.
// A raw string counts as completed only when the marker appears on both ends
// without overlapping.
func ParseRaw(raw string) (string, bool) {
	m := len(CompletionMarker)
	if len(raw) >= 2*m && strings.HasPrefix(raw, CompletionMarker) && strings.HasSuffix(raw, CompletionMarker) {
		return raw[m : len(raw)-m], true
	}
	return raw, false
}

// Raw returns the stored form of the todo, with the completion marker applied
func (t Todo) Raw() string {
	if t.Completed {
		return CompletionMarker + t.Text + CompletionMarker
	}
	return t.Text
}
