package consent

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurodemon/neurodemon/internal/storage"
)

var errReadOnly = errors.New("read-only storage")

// fakeStorage keeps values in memory and can be told to fail writes for
// selected keys.
type fakeStorage struct {
	data   map[string]string
	failOn map[string]bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		data:   make(map[string]string),
		failOn: make(map[string]bool),
	}
}

func (f *fakeStorage) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeStorage) Set(key, value string) error {
	if f.failOn[key] {
		return errReadOnly
	}
	f.data[key] = value
	return nil
}

func openFileStorage(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "local.json"), log.New(io.Discard))
	require.NoError(t, err)
	return s
}

func TestFreshProfileIsPending(t *testing.T) {
	g := New(newFakeStorage(), DefaultVersion)
	assert.Equal(t, StateUnknown, g.State())

	assert.Equal(t, StatePending, g.Check())
	assert.Equal(t, StatePending, g.State())

	_, ok := g.PreviousAcceptance()
	assert.False(t, ok)
}

func TestAcceptRequiresBothConfirmations(t *testing.T) {
	tests := []struct {
		name         string
		hasRead      bool
		acknowledged bool
	}{
		{name: "neither checked"},
		{name: "only read checked", hasRead: true},
		{name: "only acknowledged checked", acknowledged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openFileStorage(t)
			g := New(store, DefaultVersion)
			g.Check()

			err := g.Accept(tt.hasRead, tt.acknowledged)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAcknowledgementRequired)

			assert.Equal(t, StatePending, g.State())
			assert.Empty(t, store.Keys(), "a refused accept must not persist anything")
		})
	}
}

func TestAcceptWritesExactlyThreeKeys(t *testing.T) {
	store := openFileStorage(t)
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	g := New(store, DefaultVersion, WithClock(func() time.Time { return at }))
	g.Check()
	require.NoError(t, g.Accept(true, true))

	assert.Equal(t, StateAccepted, g.State())
	assert.Equal(t, []string{KeyAccepted, KeyAcceptedAt, KeyVersion}, store.Keys())

	v, _ := store.Get(KeyAccepted)
	assert.Equal(t, "true", v)
	v, _ = store.Get(KeyVersion)
	assert.Equal(t, "1.0", v)
	v, _ = store.Get(KeyAcceptedAt)
	assert.Equal(t, at.Format(time.RFC3339), v)
}

func TestAcceptedProfilePassesSilently(t *testing.T) {
	store := openFileStorage(t)

	g := New(store, DefaultVersion)
	g.Check()
	require.NoError(t, g.Accept(true, true))

	// A later session over the same storage never reaches the gate.
	again := New(store, DefaultVersion)
	assert.Equal(t, StateAccepted, again.Check())

	rec, ok := again.PreviousAcceptance()
	require.True(t, ok)
	assert.True(t, rec.Accepted)
	assert.Equal(t, DefaultVersion, rec.Version)
	assert.False(t, rec.AcceptedAt.IsZero())
}

func TestVersionBumpForcesReconsent(t *testing.T) {
	store := openFileStorage(t)

	g := New(store, "1.0")
	g.Check()
	require.NoError(t, g.Accept(true, true))

	bumped := New(store, "1.1")
	assert.Equal(t, StatePending, bumped.Check())

	// The old record is kept around so the user can be told what changed.
	rec, ok := bumped.PreviousAcceptance()
	require.True(t, ok)
	assert.Equal(t, "1.0", rec.Version)

	// Accepting again records the new version.
	require.NoError(t, bumped.Accept(true, true))
	assert.Equal(t, StateAccepted, New(store, "1.1").Check())
}

func TestAcceptWriteFailureKeepsGatePending(t *testing.T) {
	tests := []struct {
		name   string
		failOn string
	}{
		{name: "version write fails", failOn: KeyVersion},
		{name: "timestamp write fails", failOn: KeyAcceptedAt},
		{name: "flag write fails", failOn: KeyAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeStorage()
			fake.failOn[tt.failOn] = true

			g := New(fake, DefaultVersion)
			g.Check()

			err := g.Accept(true, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, errReadOnly)
			assert.Equal(t, StatePending, g.State())

			// Whatever was partially written must not count as acceptance.
			assert.Equal(t, StatePending, New(fake, DefaultVersion).Check())
		})
	}
}

func TestRejectPersistsNothing(t *testing.T) {
	store := openFileStorage(t)

	g := New(store, DefaultVersion)
	g.Check()
	g.Reject()

	assert.Equal(t, StateRejected, g.State())
	assert.Empty(t, store.Keys())

	// Rejection is not remembered: the next session asks again.
	assert.Equal(t, StatePending, New(store, DefaultVersion).Check())
}

func TestCheckIgnoresNonTrueFlag(t *testing.T) {
	fake := newFakeStorage()
	fake.data[KeyAccepted] = "yes"
	fake.data[KeyVersion] = DefaultVersion

	g := New(fake, DefaultVersion)
	assert.Equal(t, StatePending, g.Check())
}

func TestCheckToleratesBadTimestamp(t *testing.T) {
	fake := newFakeStorage()
	fake.data[KeyAccepted] = "true"
	fake.data[KeyVersion] = DefaultVersion
	fake.data[KeyAcceptedAt] = "not-a-time"

	g := New(fake, DefaultVersion)
	assert.Equal(t, StateAccepted, g.Check())

	rec, ok := g.PreviousAcceptance()
	require.True(t, ok)
	assert.True(t, rec.AcceptedAt.IsZero())
}
