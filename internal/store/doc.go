// Package store provides the durable local key-value storage for timejar and
// the snapshot adapter on top of it.
//
// # Store Interface
//
// The [Store] interface is deliberately small, a get/put keyed by string,
// because the widget persists exactly one value:
//   - [Bolt]: BoltDB, the default backend
//   - [SQLiteWrapper]: SQLite via modernc.org/sqlite, with embedded migrations
//   - [File]: a JSON object on disk, localStorage style
//   - [Memory]: process lifetime only
//
// Use [Open] to obtain the backend named in the configuration:
//
//	s, err := store.Open(cfg.Storage, dataDir)
//
// # Snapshots
//
// [Snapshots] loads and saves the whole widget state under one key.
// Loading never fails loudly: a missing or corrupt value means defaults.
package store
