package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/inovacc/timejar/internal/encoding"
	"github.com/inovacc/timejar/internal/model"
	"github.com/inovacc/timejar/internal/store"
)

// WriteSnapshot writes snap in the persisted layout.
func WriteSnapshot(w io.Writer, snap model.Snapshot, pretty bool) error {
	data, err := store.Encode(snap)
	if err != nil {
		return err
	}

	if pretty {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		return encoding.WriteJSON(w, v)
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

// WriteSnapshotToFile writes snap to path, replacing the file atomically.
func WriteSnapshotToFile(path string, snap model.Snapshot) error {
	data, err := store.Encode(snap)
	if err != nil {
		return err
	}

	return encoding.WriteFileAtomic(path, append(data, '\n'), 0o600)
}

// ReadSnapshotFile reads a snapshot exported by timejar, or a localStorage
// dump that holds the snapshot as a string under key.
func ReadSnapshotFile(path, key string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ImportError{Path: path, Err: err}
	}

	snap, err := ParseSnapshot(data, key)
	if err != nil {
		return nil, &ImportError{Path: path, Err: err}
	}

	return snap, nil
}

// ParseSnapshot decodes data as a snapshot, unwrapping a localStorage dump
// first when data has a string under key.
func ParseSnapshot(data []byte, key string) (*model.Snapshot, error) {
	var dump map[string]json.RawMessage
	if err := json.Unmarshal(data, &dump); err == nil {
		if raw, ok := dump[key]; ok {
			var inner string
			if err := json.Unmarshal(raw, &inner); err != nil {
				return nil, fmt.Errorf("%s is not a string: %w", key, err)
			}

			data = []byte(inner)
		} else if _, ok := dump["history"]; !ok {
			return nil, fmt.Errorf("no history field and no %s entry", key)
		}
	}

	return store.Decode(data)
}

// ImportSnapshot replaces the session state with snap. The observer persists it.
func ImportSnapshot(s *Session, snap model.Snapshot) {
	s.State.Restore(snap)
}
