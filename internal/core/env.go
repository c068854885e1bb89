package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/timejar/internal/model"
	"github.com/inovacc/timejar/internal/params"
)

// Env is the resolved data directory and configuration for one invocation.
type Env struct {
	DataDir    string
	ConfigPath string
	Config     model.Config
}

// EnvOptions carries the command line overrides.
type EnvOptions struct {
	DataDir    string
	ConfigPath string
	Backend    string
}

// LoadEnv resolves the data directory and loads the configuration.
func LoadEnv(opts EnvOptions) (*Env, error) {
	dataDir, err := params.Resolve(opts.DataDir)
	if err != nil {
		return nil, err
	}

	path := ConfigPath(dataDir, opts.ConfigPath)

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if opts.Backend != "" {
		cfg.Storage.Backend = opts.Backend

		if err := ValidateConfig(cfg); err != nil {
			return nil, fmt.Errorf("--backend: %w", err)
		}
	}

	return &Env{DataDir: dataDir, ConfigPath: path, Config: cfg}, nil
}

// SetupLogger installs the default slog logger described by [log]. The
// returned function closes the log file, if any.
func SetupLogger(env *Env) (func() error, error) {
	level, err := ParseLevel(env.Config.Log.Level)
	if err != nil {
		return nil, err
	}

	var (
		w       io.Writer
		closeFn = func() error { return nil }
	)

	switch file := env.Config.Log.File; file {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		if !filepath.IsAbs(file) {
			file = filepath.Join(env.DataDir, file)
		}

		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}

		w = f
		closeFn = f.Close
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))

	return closeFn, nil
}
