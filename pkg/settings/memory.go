package settings

import "time"

// MemoryStore is a process-local Store.
type MemoryStore struct {
	entries map[string]Entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry), now: time.Now}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	e, ok := m.entries[key]
	return e.Value, ok, nil
}

func (m *MemoryStore) Entry(key string) (*Entry, error) {
	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.entries[key] = Entry{Key: key, Value: value, UpdatedAt: m.now().UTC()}
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	delete(m.entries, key)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
