package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FileStore keeps every key as a top-level member of one JSON document.
// Values are stored as JSON strings, so the file reads like an exported
// browser local storage.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON document at path.
// The file is created on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the backing document
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	doc, err := f.read()
	if err != nil {
		return nil, false, err
	}

	res := gjson.GetBytes(doc, escapePath(key))
	if !res.Exists() {
		return nil, false, nil
	}
	return []byte(res.String()), true, nil
}

func (f *FileStore) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	doc, err := f.read()
	if err != nil {
		return err
	}

	doc, err = sjson.SetBytes(doc, escapePath(key), string(value))
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return f.write(doc)
}

func (f *FileStore) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	doc, err := f.read()
	if err != nil {
		return err
	}
	if !gjson.GetBytes(doc, escapePath(key)).Exists() {
		return nil
	}

	doc, err = sjson.DeleteBytes(doc, escapePath(key))
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return f.write(doc)
}

func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) read() ([]byte, error) {
	doc, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("failed to read storage file %s: %w", f.path, err)
	}
	if len(strings.TrimSpace(string(doc))) == 0 {
		return []byte("{}"), nil
	}
	if !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrCorruptStore, f.path)
	}
	return doc, nil
}

// write replaces the document atomically so a crash never leaves half a file
func (f *FileStore) write(doc []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp storage file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace storage file %s: %w", f.path, err)
	}
	return nil
}

// escapePath makes key safe to use as a single gjson/sjson path component
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', ':':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
