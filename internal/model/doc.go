// Package model defines the data structures shared by the jar state, the
// storage adapter and the command line.
//
// # Snapshot
//
// The [Snapshot] is what gets persisted, as one JSON value:
//
//	{"jar1Hours": 364, "jar2Hours": 1, "history": [{"value": 60, "date": "10/19/2026, 9:15:00 AM"}]}
//
// The layout is shared with the browser build, so a localStorage dump can be
// imported as is. A record value is a number after a transfer and a string
// after an edit; [RecordValue] keeps that distinction.
//
// # Config
//
// The [Config] struct mirrors the sections of config.ini:
//
//	type Config struct {
//	    Storage StorageConfig // [storage] backend, key, path
//	    Jar     JarConfig     // [jar] title, history_limit, persist_empty, strict_edits
//	    Log     LogConfig     // [log] level, file
//	}
package model
