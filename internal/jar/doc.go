// Package jar holds the time jar state: two running totals in hours and the
// transfer history that produced them.
//
// A [State] starts at the baseline (Jar 1 at 365 hours, Jar 2 empty) or at a
// restored snapshot. Every committed mutation notifies the subscribed
// observers synchronously with a full snapshot; the storage adapter is one
// such observer.
//
//	s := jar.New(jar.WithSnapshot(snap))
//	unsubscribe := s.Subscribe(func(snap model.Snapshot) { _, _ = snapshots.Save(snap) })
//	defer unsubscribe()
//
//	if err := s.Transfer("60"); err != nil {
//	    // rejected, state unchanged
//	}
//
// Editing a history record replays the whole history from the baseline, see
// [Replay]. A State is not safe for concurrent use.
package jar
