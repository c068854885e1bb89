package store

import (
	"github.com/inovacc/timejar/internal/store/sqlite"
)

// SQLiteWrapper wraps the sqlite.Store to implement the Store interface.
type SQLiteWrapper struct {
	store *sqlite.Store
}

// NewSQLite opens or creates a SQLite database at path.
func NewSQLite(path string) (*SQLiteWrapper, error) {
	s, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteWrapper{store: s}, nil
}

func (w *SQLiteWrapper) Ping() error {
	return w.store.Ping()
}

func (w *SQLiteWrapper) Get(key string) ([]byte, bool, error) {
	return w.store.Get(key)
}

func (w *SQLiteWrapper) Put(key string, value []byte) error {
	return w.store.Put(key, value)
}

func (w *SQLiteWrapper) Close() error {
	return w.store.Close()
}
