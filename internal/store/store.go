package store

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/timejar/internal/application"
	"github.com/inovacc/timejar/internal/model"
)

// Store is durable local key-value storage.
type Store interface {
	Ping() error
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Close() error
}

// Backend names accepted in [storage] backend.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Path returns where the configured backend keeps its data. It is empty for
// the memory backend.
func Path(cfg model.StorageConfig, dataDir string) (string, error) {
	if cfg.Backend == BackendMemory {
		return "", nil
	}

	if cfg.Path != "" {
		return cfg.Path, nil
	}

	var ext string

	switch cfg.Backend {
	case BackendBolt:
		ext = ".bolt"
	case BackendSQLite:
		ext = ".db"
	case BackendFile:
		ext = ".json"
	default:
		return "", fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	return filepath.Join(dataDir, application.AppName+ext), nil
}

// Open opens the backend selected by cfg.
func Open(cfg model.StorageConfig, dataDir string) (Store, error) {
	path, err := Path(cfg, dataDir)
	if err != nil {
		return nil, err
	}

	var s Store

	switch cfg.Backend {
	case BackendBolt:
		s, err = NewBolt(path)
	case BackendSQLite:
		s, err = NewSQLite(path)
	case BackendFile:
		s, err = NewFile(path)
	case BackendMemory:
		s = NewMemory()
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}

	if err := s.Ping(); err != nil {
		_ = s.Close()

		return nil, fmt.Errorf("pinging %s store: %w", cfg.Backend, err)
	}

	return s, nil
}
