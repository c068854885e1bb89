package model

import "github.com/inovacc/timejar/internal/application"

// StorageConfig selects and locates the durable key-value store.
type StorageConfig struct {
	// Backend is one of bolt, sqlite, file or memory
	Backend string `ini:"backend"`

	// Key is the key the snapshot is stored under
	Key string `ini:"key"`

	// Path overrides the backend file location; empty means the data directory
	Path string `ini:"path"`
}

// JarConfig tunes the widget.
type JarConfig struct {
	Title string `ini:"title"`

	// HistoryLimit is how many recent transfers the widget shows
	HistoryLimit int `ini:"history_limit"`

	// PersistEmpty saves snapshots even when a jar is zero or the history is
	// empty. false restores the browser build's save guard.
	PersistEmpty bool `ini:"persist_empty"`

	// StrictEdits rejects edits whose value has no leading integer.
	StrictEdits bool `ini:"strict_edits"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level string `ini:"level"`

	// File is relative to the data directory; "-" means stderr
	File string `ini:"file"`
}

// Config holds the application configuration
type Config struct {
	Storage StorageConfig `ini:"storage"`
	Jar     JarConfig     `ini:"jar"`
	Log     LogConfig     `ini:"log"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: "bolt",
			Key:     application.StorageKey,
		},
		Jar: JarConfig{
			Title:        "Read Book For 365 Hrs",
			HistoryLimit: 5,
			PersistEmpty: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  application.AppName + ".log",
		},
	}
}
