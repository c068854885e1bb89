package core

import (
	"log/slog"

	"github.com/inovacc/timejar/internal/jar"
	"github.com/inovacc/timejar/internal/store"
)

// Session is an open store plus the jar state hydrated from it. Every
// committed state change is saved through the snapshot observer.
type Session struct {
	Env       *Env
	State     *jar.State
	Snapshots *store.Snapshots

	// Restored reports whether the state came from storage rather than defaults
	Restored bool

	storage     store.Store
	unsubscribe func()
}

// OpenSession opens the configured store, loads the snapshot once and
// registers the persistence observer. opts are applied after the snapshot.
func OpenSession(env *Env, opts ...jar.Option) (*Session, error) {
	storage, err := store.Open(env.Config.Storage, env.DataDir)
	if err != nil {
		return nil, err
	}

	snapshots := &store.Snapshots{
		Store:        storage,
		Key:          env.Config.Storage.Key,
		PersistEmpty: env.Config.Jar.PersistEmpty,
		Logger:       slog.Default().With("backend", env.Config.Storage.Backend),
	}

	stateOpts := []jar.Option{jar.WithStrictEdits(env.Config.Jar.StrictEdits)}

	snap, restored := snapshots.Load()
	if restored {
		stateOpts = append(stateOpts, jar.WithSnapshot(*snap))
	}

	state := jar.New(append(stateOpts, opts...)...)

	slog.Debug("session opened",
		"backend", env.Config.Storage.Backend,
		"restored", restored,
		"jar1", state.Jar1(),
		"jar2", state.Jar2(),
		"history", len(state.History()))

	return &Session{
		Env:         env,
		State:       state,
		Snapshots:   snapshots,
		Restored:    restored,
		storage:     storage,
		unsubscribe: state.Subscribe(snapshots.Observe),
	}, nil
}

// HistoryLimit is the configured number of records the widget shows.
func (s *Session) HistoryLimit() int {
	return s.Env.Config.Jar.HistoryLimit
}

// Close detaches the observer and closes the store.
func (s *Session) Close() error {
	s.unsubscribe()

	return s.storage.Close()
}
