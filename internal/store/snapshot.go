package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/inovacc/timejar/internal/model"
)

// Snapshots persists the widget state as one JSON value under Key.
type Snapshots struct {
	Store Store
	Key   string

	// PersistEmpty disables the legacy guard that skips saving while a jar
	// total is zero (or NaN) or the history is empty.
	PersistEmpty bool

	Logger *slog.Logger
}

// Load reads the snapshot. A missing or undecodable value yields nil, false;
// the reason is only logged.
func (s *Snapshots) Load() (*model.Snapshot, bool) {
	data, ok, err := s.Store.Get(s.Key)
	if err != nil {
		s.logger().Debug("snapshot load failed, using defaults", "key", s.Key, "error", err)

		return nil, false
	}

	if !ok {
		s.logger().Debug("no snapshot stored, using defaults", "key", s.Key)

		return nil, false
	}

	snap, err := Decode(data)
	if err != nil {
		s.logger().Debug("snapshot unreadable, using defaults", "key", s.Key, "error", err)

		return nil, false
	}

	return snap, true
}

// Save writes snap. It reports false without error when the legacy guard
// suppressed the write.
func (s *Snapshots) Save(snap model.Snapshot) (bool, error) {
	if !s.PersistEmpty && !Truthy(snap) {
		s.logger().Debug("snapshot save skipped", "key", s.Key,
			"jar1", float64(snap.Jar1Hours), "jar2", float64(snap.Jar2Hours), "history", len(snap.History))

		return false, nil
	}

	data, err := Encode(snap)
	if err != nil {
		return false, err
	}

	if err := s.Store.Put(s.Key, data); err != nil {
		return false, fmt.Errorf("saving snapshot: %w", err)
	}

	s.logger().Debug("snapshot saved", "key", s.Key, "history", len(snap.History))

	return true, nil
}

// Observe is a jar.Observer that saves every snapshot and logs failures.
func (s *Snapshots) Observe(snap model.Snapshot) {
	if _, err := s.Save(snap); err != nil {
		s.logger().Warn("snapshot save failed", "key", s.Key, "error", err)
	}
}

// Truthy reports whether every field of snap is set: both jars non-zero and
// not NaN, and a non-empty history.
func Truthy(snap model.Snapshot) bool {
	j1, j2 := float64(snap.Jar1Hours), float64(snap.Jar2Hours)

	return j1 != 0 && !math.IsNaN(j1) && j2 != 0 && !math.IsNaN(j2) && len(snap.History) > 0
}

// Encode renders snap in the persisted layout.
func Encode(snap model.Snapshot) ([]byte, error) {
	if snap.History == nil {
		snap.History = []model.TransferRecord{}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	return data, nil
}

// Decode parses the persisted layout. The value must be a JSON object.
func Decode(data []byte) (*model.Snapshot, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, errors.New("decoding snapshot: value is null")
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	if snap.History == nil {
		snap.History = []model.TransferRecord{}
	}

	return &snap, nil
}

func (s *Snapshots) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}

	return slog.Default()
}
