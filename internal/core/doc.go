// Package core wires configuration, storage and the jar state together for
// the commands and the widget.
//
// # Design Principles
//
//   - Functions return errors instead of exiting
//   - All persistence goes through a [Session], whose observer saves every change
//   - UI-specific logic belongs in the cli package, not here
//
// # Startup
//
// A command resolves its environment, installs the logger, then opens a session:
//
//  1. [LoadEnv] - data directory, config.ini and command line overrides
//  2. [SetupLogger] - slog default logger per the [log] section
//  3. [OpenSession] - store, one-time snapshot load, persistence observer
//
// # Export and Import
//
// [WriteSnapshot] emits the persisted layout. [ReadSnapshotFile] accepts that
// layout or a browser localStorage dump keyed by the storage key.
package core
