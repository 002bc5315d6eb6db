package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when a stored todo list is not a JSON array of strings
var ErrMalformed = errors.New("stored todo list is malformed")

// EncodeTodos serializes raw todo strings as a JSON array
func EncodeTodos(raw []string) ([]byte, error) {
	if raw == nil {
		raw = []string{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode todos: %w", err)
	}
	return data, nil
}

// DecodeTodos parses a stored JSON array of strings. A JSON null document
// decodes to an empty list; anything else that is not an array of strings,
// null elements included, is rejected.
func DecodeTodos(data []byte) ([]string, error) {
	// pointers tell a null element apart from an empty string
	var elems []*string
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	raw := make([]string, 0, len(elems))
	for i, e := range elems {
		if e == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrMalformed, i)
		}
		raw = append(raw, *e)
	}
	return raw, nil
}
