// Package todos holds the todo list state and the transitions applied to it.
package todos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pluqqy/todo-terminal/pkg/models"
)

var ErrIndexOutOfRange = errors.New("todo index out of range")

// Mode tells whether an item is being edited
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

// List is the todo state store. The add buffer and the edit buffer are
// separate, so text typed for a new item never leaks into an edit and the
// reverse.
type List struct {
	items    []models.Todo
	input    string
	mode     Mode
	editIdx  int
	editText string
}

// NewList creates a list from raw todo strings
func NewList(raw []string) *List {
	l := &List{}
	l.Load(raw)
	return l
}

// Load replaces the list contents with raw todo strings and resets any edit
func (l *List) Load(raw []string) {
	l.items = make([]models.Todo, 0, len(raw))
	for _, r := range raw {
		l.items = append(l.items, models.NewTodo(r))
	}
	l.clearEdit()
}

// Len returns the number of todos
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the todos in order
func (l *List) Items() []models.Todo {
	out := make([]models.Todo, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the todo at index
func (l *List) Item(index int) (models.Todo, error) {
	if err := l.check(index); err != nil {
		return models.Todo{}, err
	}
	return l.items[index], nil
}

// Raw returns the stored form of every todo in order
func (l *List) Raw() []string {
	out := make([]string, len(l.items))
	for i, t := range l.items {
		out[i] = t.Raw()
	}
	return out
}

// IndexOf returns the current position of the todo with id, or -1
func (l *List) IndexOf(id string) int {
	for i, t := range l.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Input returns the add buffer
func (l *List) Input() string {
	return l.input
}

// SetInput replaces the add buffer
func (l *List) SetInput(text string) {
	l.input = text
}

// Mode returns the current mode
func (l *List) Mode() Mode {
	return l.mode
}

// Editing returns the index being edited
func (l *List) Editing() (int, bool) {
	if l.mode != ModeEdit {
		return -1, false
	}
	return l.editIdx, true
}

// EditText returns the edit buffer
func (l *List) EditText() string {
	return l.editText
}

// SetEditText replaces the edit buffer
func (l *List) SetEditText(text string) {
	l.editText = text
}

// Add appends text as a new todo unless it is blank, and clears the add
// buffer. It reports whether the list changed.
func (l *List) Add(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	l.items = append(l.items, models.NewTodo(text))
	l.input = ""
	return true
}

// BeginEdit switches to edit mode and loads the raw text of the todo at
// index, marker included, into the edit buffer.
func (l *List) BeginEdit(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.mode = ModeEdit
	l.editIdx = index
	l.editText = l.items[index].Raw()
	return nil
}

// CommitEdit replaces the todo at index with the edit buffer as is. There is
// no trimming and an empty buffer produces an empty todo.
func (l *List) CommitEdit(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.setRaw(index, l.editText)
	l.clearEdit()
	return nil
}

// CancelEdit leaves edit mode and drops the edit buffer
func (l *List) CancelEdit() {
	l.clearEdit()
}

// Delete removes the todo at index. Any edit in progress is abandoned,
// whichever item it was on.
func (l *List) Delete(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.clearEdit()
	return nil
}

// Toggle flips the completion state of the todo at index
func (l *List) Toggle(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	flipped := l.items[index]
	flipped.Completed = !flipped.Completed
	l.setRaw(index, flipped.Raw())
	return nil
}

// Completed returns how many todos are marked done
func (l *List) Completed() int {
	n := 0
	for _, t := range l.items {
		if t.Completed {
			n++
		}
	}
	return n
}

// setRaw rebuilds the todo at index from its stored form, keeping its id, so
// the list always reads the same as it would after a reload
func (l *List) setRaw(index int, raw string) {
	text, completed := models.ParseRaw(raw)
	l.items[index].Text = text
	l.items[index].Completed = completed
}

func (l *List) clearEdit() {
	l.mode = ModeAdd
	l.editIdx = -1
	l.editText = ""
}

func (l *List) check(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (list has %d items)", ErrIndexOutOfRange, index, len(l.items))
	}
	return nil
}
