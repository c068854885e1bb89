package core

import (
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	inner := errors.New("unknown backend")
	err := &ConfigError{Path: "/etc/timejar/config.ini", Err: inner}

	expected := "config /etc/timejar/config.ini: unknown backend"
	if err.Error() != expected {
		t.Errorf("ConfigError.Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestImportError(t *testing.T) {
	inner := errors.New("not a snapshot")
	err := &ImportError{Path: "dump.json", Err: inner}

	expected := "import dump.json: not a snapshot"
	if err.Error() != expected {
		t.Errorf("ImportError.Error() = %q, want %q", err.Error(), expected)
	}

	var target *ImportError
	if !errors.As(err, &target) {
		t.Error("errors.As should match *ImportError")
	}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the inner error")
	}
}
