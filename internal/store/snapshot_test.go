package store

import (
	"errors"
	"math"
	"testing"

	"github.com/inovacc/timejar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*Memory
}

func (failingStore) Put(string, []byte) error { return errors.New("disk full") }

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Jar1Hours: 363.5,
		Jar2Hours: 1.5,
		History: []model.TransferRecord{
			{Value: model.NumberValue(60), Date: "10/19/2026, 9:15:00 AM"},
			{Value: model.TextValue("30"), Date: "10/19/2026, 9:20:00 AM"},
		},
	}
}

func TestSnapshots_SaveLoadIdempotent(t *testing.T) {
	s := &Snapshots{Store: NewMemory(), Key: "timeTransferData", PersistEmpty: true}

	saved, err := s.Save(sampleSnapshot())
	require.NoError(t, err)
	assert.True(t, saved)

	first, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, sampleSnapshot(), *first)

	_, err = s.Save(*first)
	require.NoError(t, err)

	second, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, *first, *second)
}

func TestSnapshots_PersistedLayout(t *testing.T) {
	mem := NewMemory()
	s := &Snapshots{Store: mem, Key: "timeTransferData", PersistEmpty: true}

	_, err := s.Save(sampleSnapshot())
	require.NoError(t, err)

	raw, ok, err := mem.Get("timeTransferData")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{
		"jar1Hours": 363.5,
		"jar2Hours": 1.5,
		"history": [
			{"value": 60, "date": "10/19/2026, 9:15:00 AM"},
			{"value": "30", "date": "10/19/2026, 9:20:00 AM"}
		]
	}`, string(raw))
}

func TestSnapshots_LoadFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"corrupt", "{not json"},
		{"null", "null"},
		{"array", "[]"},
		{"wrong types", `{"jar1Hours":"lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemory()
			require.NoError(t, mem.Put("timeTransferData", []byte(tt.raw)))

			snap, ok := (&Snapshots{Store: mem, Key: "timeTransferData"}).Load()
			assert.False(t, ok)
			assert.Nil(t, snap)
		})
	}

	snap, ok := (&Snapshots{Store: NewMemory(), Key: "timeTransferData"}).Load()
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestSnapshots_LegacyGuard(t *testing.T) {
	tests := []struct {
		name string
		snap model.Snapshot
		want bool
	}{
		{"all set", sampleSnapshot(), true},
		{"defaults", model.Snapshot{Jar1Hours: 365, History: []model.TransferRecord{}}, false},
		{"jar1 empty", model.Snapshot{Jar1Hours: 0, Jar2Hours: 365, History: sampleSnapshot().History}, false},
		{"nan", model.Snapshot{Jar1Hours: model.Hours(math.NaN()), Jar2Hours: 1, History: sampleSnapshot().History}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemory()

			saved, err := (&Snapshots{Store: mem, Key: "k"}).Save(tt.snap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, saved)

			_, stored, _ := mem.Get("k")
			assert.Equal(t, tt.want, stored)

			saved, err = (&Snapshots{Store: NewMemory(), Key: "k", PersistEmpty: true}).Save(tt.snap)
			require.NoError(t, err)
			assert.True(t, saved)
		})
	}
}

func TestSnapshots_NaNRoundTrip(t *testing.T) {
	s := &Snapshots{Store: NewMemory(), Key: "k", PersistEmpty: true}

	snap := sampleSnapshot()
	snap.Jar1Hours = model.Hours(math.NaN())

	_, err := s.Save(snap)
	require.NoError(t, err)

	got, ok := s.Load()
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(got.Jar1Hours)))
}

func TestSnapshots_ObserveSwallowsErrors(t *testing.T) {
	s := &Snapshots{Store: &failingStore{Memory: NewMemory()}, Key: "k", PersistEmpty: true}

	_, err := s.Save(sampleSnapshot())
	assert.ErrorContains(t, err, "disk full")

	assert.NotPanics(t, func() { s.Observe(sampleSnapshot()) })
}
