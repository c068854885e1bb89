package store

import "sync"

// Memory is a Store that lives only as long as the process.
type Memory struct {
	items map[string][]byte
	mu    sync.RWMutex
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) Ping() error  { return nil }
func (m *Memory) Close() error { return nil }

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}

	return append([]byte{}, v...), true, nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = append([]byte{}, value...)

	return nil
}
