package storage

// MemoryStore keeps values in a map. It is used by tests and by the
// "memory" backend for throwaway sessions.
type MemoryStore struct {
	values map[string][]byte
	writes int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	m.writes++
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Writes reports how many Set calls the store has served
func (m *MemoryStore) Writes() int {
	return m.writes
}
