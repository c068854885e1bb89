package store

import (
	"fmt"
	"sync"

	"github.com/inovacc/timejar/internal/encoding"
)

// File keeps every key in a single JSON object on disk, the way a browser
// keeps localStorage: keys map to string values.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a file store at path. The file is created on first Put.
func NewFile(path string) (*File, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	return &File{path: path}, nil
}

func (f *File) Ping() error {
	_, err := f.read()

	return err
}

func (f *File) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.read()
	if err != nil {
		return nil, false, err
	}

	v, ok := items[key]
	if !ok {
		return nil, false, nil
	}

	return []byte(v), true, nil
}

func (f *File) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.read()
	if err != nil {
		return err
	}

	items[key] = string(value)

	return encoding.SaveJSON(f.path, items)
}

func (f *File) Close() error {
	return nil
}

func (f *File) read() (map[string]string, error) {
	items, err := encoding.LoadJSON[map[string]string](f.path)
	if err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}

	if items == nil || *items == nil {
		return map[string]string{}, nil
	}

	return *items, nil
}
