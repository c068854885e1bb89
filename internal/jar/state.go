package jar

import (
	"math"
	"time"

	"github.com/inovacc/timejar/internal/model"
)

const (
	// Baseline is the starting total of Jar 1, in hours.
	Baseline = 365.0

	minutesPerHour = 60.0
)

// Observer receives the full state after each committed mutation.
type Observer func(snap model.Snapshot)

type subscription struct {
	id int
	fn Observer
}

// State is the jar state store.
type State struct {
	jar1    float64
	jar2    float64
	history []model.TransferRecord

	now    func() time.Time
	strict bool

	observers []subscription
	nextID    int
}

// Option configures a State.
type Option func(*State)

// WithClock sets the clock used to timestamp records.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// WithSnapshot starts the state from a persisted snapshot instead of the baseline.
func WithSnapshot(snap model.Snapshot) Option {
	return func(s *State) {
		s.load(snap)
	}
}

// WithStrictEdits makes EditHistory reject values without a leading integer.
func WithStrictEdits(strict bool) Option {
	return func(s *State) {
		s.strict = strict
	}
}

// New returns a State at the baseline, adjusted by opts.
func New(opts ...Option) *State {
	s := &State{
		jar1:    Baseline,
		history: []model.TransferRecord{},
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Jar1 returns the Jar 1 total in hours.
func (s *State) Jar1() float64 { return s.jar1 }

// Jar2 returns the Jar 2 total in hours.
func (s *State) Jar2() float64 { return s.jar2 }

// History returns a copy of the history in chronological order.
func (s *State) History() []model.TransferRecord {
	out := make([]model.TransferRecord, len(s.history))
	copy(out, s.history)

	return out
}

// Snapshot returns the full state.
func (s *State) Snapshot() model.Snapshot {
	return model.Snapshot{
		Jar1Hours: model.Hours(s.jar1),
		Jar2Hours: model.Hours(s.jar2),
		History:   s.History(),
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *State) Subscribe(fn Observer) func() {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)

				return
			}
		}
	}
}

// Transfer parses raw as whole minutes and moves them from Jar 1 to Jar 2.
// A rejected transfer leaves the state untouched and returns a *TransferError.
func (s *State) Transfer(raw string) error {
	minutes := model.ParseLeadingInt(raw)

	switch {
	case math.IsNaN(minutes) || minutes <= 0:
		return &TransferError{Input: raw, Err: ErrInvalidMinutes}
	case minutes > s.jar1*minutesPerHour:
		return &TransferError{Input: raw, Err: ErrInsufficientBalance}
	}

	s.apply(minutes)

	return nil
}

func (s *State) apply(minutes float64) {
	hours := minutes / minutesPerHour

	s.jar1 -= hours
	s.jar2 += hours
	s.history = append(s.History(), model.TransferRecord{
		Value: model.NumberValue(minutes),
		Date:  s.timestamp(),
	})

	s.notify()
}

// EditHistory replaces the record at index, which addresses the full
// chronological history, with raw and a fresh timestamp, then recomputes both
// jars with Replay. Unless strict edits are on, raw is stored as entered and a
// value without a leading integer turns both totals into NaN.
func (s *State) EditHistory(index int, raw string) error {
	if index < 0 || index >= len(s.history) {
		return ErrIndexOutOfRange
	}

	if s.strict && math.IsNaN(model.ParseLeadingInt(raw)) {
		return ErrInvalidEdit
	}

	updated := s.History()
	updated[index] = model.TransferRecord{
		Value: model.TextValue(raw),
		Date:  s.timestamp(),
	}

	s.jar1, s.jar2 = Replay(updated)
	s.history = updated

	s.notify()

	return nil
}

// Restore replaces the whole state with snap and notifies observers.
func (s *State) Restore(snap model.Snapshot) {
	s.load(snap)
	s.notify()
}

// Replay folds history from the baseline: Jar 1 starts at Baseline and loses
// each record's minutes, Jar 2 starts empty and gains them.
func Replay(history []model.TransferRecord) (jar1, jar2 float64) {
	jar1 = Baseline

	for _, rec := range history {
		hours := rec.Value.Minutes() / minutesPerHour
		jar1 -= hours
		jar2 += hours
	}

	return jar1, jar2
}

func (s *State) load(snap model.Snapshot) {
	s.jar1 = float64(snap.Jar1Hours)
	s.jar2 = float64(snap.Jar2Hours)
	s.history = snap.Clone().History
}

func (s *State) timestamp() string {
	return s.now().Format(model.TimestampLayout)
}

func (s *State) notify() {
	if len(s.observers) == 0 {
		return
	}

	snap := s.Snapshot()

	for _, sub := range s.observers {
		sub.fn(snap.Clone())
	}
}
