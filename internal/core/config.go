package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/inovacc/timejar/internal/encoding"
	"github.com/inovacc/timejar/internal/model"
	"github.com/inovacc/timejar/internal/store"
	"gopkg.in/ini.v1"
)

// ConfigFileName is the configuration file inside the data directory.
const ConfigFileName = "config.ini"

// ConfigPath returns override, or config.ini inside dataDir.
func ConfigPath(dataDir, override string) string {
	if override != "" {
		return override
	}

	return filepath.Join(dataDir, ConfigFileName)
}

// LoadConfig reads the INI file at path over the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if !encoding.FileExists(path) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	if err := file.MapTo(&cfg); err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	if err := ValidateConfig(cfg); err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// ValidateConfig checks the values LoadConfig cannot type-check.
func ValidateConfig(cfg model.Config) error {
	switch cfg.Storage.Backend {
	case store.BackendBolt, store.BackendSQLite, store.BackendFile, store.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if cfg.Storage.Key == "" {
		return errors.New("storage key must not be empty")
	}

	if cfg.Jar.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", cfg.Jar.HistoryLimit)
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	return nil
}

// InitConfig writes cfg to path. An existing file is only replaced when force is set.
func InitConfig(path string, cfg model.Config, force bool) error {
	if encoding.FileExists(path) && !force {
		return &ConfigError{Path: path, Err: errors.New("already exists")}
	}

	file := ini.Empty()
	if err := ini.ReflectFrom(file, &cfg); err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	if err := file.SaveTo(path); err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	return nil
}

// ParseLevel converts a [log] level value to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}

	return level, nil
}

// ShowConfig displays the effective configuration
func ShowConfig(w io.Writer, env *Env) error {
	storePath, err := store.Path(env.Config.Storage, env.DataDir)
	if err != nil {
		return err
	}

	if storePath == "" {
		storePath = "(in memory)"
	}

	cfg := env.Config

	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Config File:     %s\n", env.ConfigPath)
	_, _ = fmt.Fprintf(w, "Data Directory:  %s\n", env.DataDir)
	_, _ = fmt.Fprintf(w, "Backend:         %s\n", cfg.Storage.Backend)
	_, _ = fmt.Fprintf(w, "Storage Path:    %s\n", storePath)
	_, _ = fmt.Fprintf(w, "Storage Key:     %s\n", cfg.Storage.Key)
	_, _ = fmt.Fprintf(w, "Title:           %s\n", cfg.Jar.Title)
	_, _ = fmt.Fprintf(w, "History Limit:   %d\n", cfg.Jar.HistoryLimit)
	_, _ = fmt.Fprintf(w, "Persist Empty:   %t\n", cfg.Jar.PersistEmpty)
	_, _ = fmt.Fprintf(w, "Strict Edits:    %t\n", cfg.Jar.StrictEdits)
	_, _ = fmt.Fprintf(w, "Log Level:       %s\n", cfg.Log.Level)
	_, _ = fmt.Fprintf(w, "Log File:        %s\n", cfg.Log.File)

	return nil
}
