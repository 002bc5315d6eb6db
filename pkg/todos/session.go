package todos

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/pluqqy/todo-terminal/pkg/storage"
)

// Session binds a List to a Store: it hydrates the list once and writes it
// back after every change to the list. Changes to the buffers alone are not
// written.
type Session struct {
	list   *List
	store  storage.Store
	key    string
	logger *log.Logger
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithLogger sets the logger used for persistence events
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithKey overrides the storage key, mainly for tests sharing one store
func WithKey(key string) SessionOption {
	return func(s *Session) {
		s.key = key
	}
}

// Open hydrates a session from store. A missing key gives an empty list;
// stored data that cannot be decoded is returned as an error and the store
// is left untouched.
func Open(store storage.Store, opts ...SessionOption) (*Session, error) {
	s := &Session{
		list:   NewList(nil),
		store:  store,
		key:    storage.TodosKey,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := store.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load todos: %w", err)
	}
	if !ok {
		s.logger.Debug("no stored todos, starting empty", "key", s.key)
		return s, nil
	}

	raw, err := storage.DecodeTodos(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load todos from key %q: %w", s.key, err)
	}
	s.list.Load(raw)
	s.logger.Debug("hydrated todos", "key", s.key, "count", len(raw))
	return s, nil
}

// List exposes the underlying state for reading and buffer changes
func (s *Session) List() *List {
	return s.list
}

// Add appends text and saves when the list changed
func (s *Session) Add(text string) (bool, error) {
	if !s.list.Add(text) {
		return false, nil
	}
	return true, s.Save()
}

// BeginEdit starts editing the todo at index
func (s *Session) BeginEdit(index int) error {
	return s.list.BeginEdit(index)
}

// CommitEdit writes the edit buffer to the todo at index and saves
func (s *Session) CommitEdit(index int) error {
	if err := s.list.CommitEdit(index); err != nil {
		return err
	}
	return s.Save()
}

// CancelEdit abandons the current edit
func (s *Session) CancelEdit() {
	s.list.CancelEdit()
}

// Delete removes the todo at index and saves
func (s *Session) Delete(index int) error {
	if err := s.list.Delete(index); err != nil {
		return err
	}
	return s.Save()
}

// Toggle flips the todo at index and saves
func (s *Session) Toggle(index int) error {
	if err := s.list.Toggle(index); err != nil {
		return err
	}
	return s.Save()
}

// Save writes the whole list to the store, overwriting what was there
func (s *Session) Save() error {
	data, err := storage.EncodeTodos(s.list.Raw())
	if err != nil {
		return err
	}
	if err := s.store.Set(s.key, data); err != nil {
		s.logger.Error("failed to save todos", "key", s.key, "err", err)
		return fmt.Errorf("failed to save todos: %w", err)
	}
	s.logger.Debug("saved todos", "key", s.key, "count", s.list.Len())
	return nil
}

// Close releases the store
func (s *Session) Close() error {
	return s.store.Close()
}
