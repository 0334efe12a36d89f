package settings

import (
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurodemon/neurodemon/internal/storage"
)

var errDiskFull = errors.New("disk full")

// fakeStorage keeps values in memory and can be told to fail writes.
type fakeStorage struct {
	data    map[string]string
	sets    int
	failSet bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string]string)}
}

func (f *fakeStorage) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeStorage) Set(key, value string) error {
	if f.failSet {
		return errDiskFull
	}
	f.sets++
	f.data[key] = value
	return nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestOpenEmptyStorageUsesDefaults(t *testing.T) {
	s := Open(newFakeStorage(), WithLogger(testLogger()))
	assert.Equal(t, Defaults(), s.Settings())
}

func TestOpenLoadsPersistedRecord(t *testing.T) {
	fake := newFakeStorage()
	want := Defaults()
	want.Theme = ThemeDark
	want.Support.PTSD = true

	data, err := json.Marshal(want)
	require.NoError(t, err)
	fake.data[StorageKey] = string(data)

	s := Open(fake, WithLogger(testLogger()))
	assert.Equal(t, want, s.Settings())
}

func TestOpenBadRecordFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "not json", stored: "{theme:"},
		{name: "unknown enum value", stored: `{"theme":"neon","font_size":"medium","animations":"reduced","sounds":"minimal"}`},
		{name: "wrong shape", stored: `["calm"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeStorage()
			fake.data[StorageKey] = tt.stored

			s := Open(fake, WithLogger(testLogger()))
			assert.Equal(t, Defaults(), s.Settings())
		})
	}
}

func TestUpdateMergesSetFieldsOnly(t *testing.T) {
	fake := newFakeStorage()
	s := Open(fake, WithLogger(testLogger()))

	err := s.Update(Partial{
		Theme:    ptr(ThemeHighContrast),
		FontSize: ptr(FontSizeLarge),
	})
	require.NoError(t, err)

	got := s.Settings()
	want := Defaults()
	want.Theme = ThemeHighContrast
	want.FontSize = FontSizeLarge
	assert.Equal(t, want, got)

	// The persisted record matches the in-memory one.
	raw, ok := fake.Get(StorageKey)
	require.True(t, ok)
	var persisted AccessibilitySettings
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, got, persisted)
}

func TestUpdateSupportFlagsMergeIndependently(t *testing.T) {
	s := Open(newFakeStorage(), WithLogger(testLogger()))

	require.NoError(t, s.Update(Partial{Support: &SupportPartial{ADHD: ptr(true)}}))
	require.NoError(t, s.Update(Partial{Support: &SupportPartial{Anxiety: ptr(true)}}))

	got := s.Settings().Support
	assert.True(t, got.ADHD, "earlier flag must survive a later support update")
	assert.True(t, got.Anxiety)
	assert.False(t, got.Autism)
	assert.False(t, got.OCD)
	assert.False(t, got.PTSD)
}

func TestUpdateSingleBoolLeavesRestUntouched(t *testing.T) {
	s := Open(newFakeStorage(), WithLogger(testLogger()))

	require.NoError(t, s.Update(Partial{FocusMode: ptr(true)}))

	want := Defaults()
	want.FocusMode = true
	assert.Equal(t, want, s.Settings())
}

func TestUpdateInvalidEnumChangesNothing(t *testing.T) {
	fake := newFakeStorage()
	s := Open(fake, WithLogger(testLogger()))

	err := s.Update(Partial{
		Theme:     ptr(Theme("neon")),
		FocusMode: ptr(true),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)

	// Neither the invalid field nor the valid one in the same partial lands.
	assert.Equal(t, Defaults(), s.Settings())
	assert.Equal(t, 0, fake.sets)
}

func TestResetRestoresDefaults(t *testing.T) {
	fake := newFakeStorage()
	s := Open(fake, WithLogger(testLogger()))

	require.NoError(t, s.Update(Partial{
		Theme:     ptr(ThemeDark),
		Sounds:    ptr(SoundsDisabled),
		FocusMode: ptr(true),
		Support:   &SupportPartial{Autism: ptr(true), OCD: ptr(true)},
	}))
	require.NoError(t, s.Reset())

	assert.Equal(t, Defaults(), s.Settings())

	raw, ok := fake.Get(StorageKey)
	require.True(t, ok)
	var persisted AccessibilitySettings
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, Defaults(), persisted)
}

func TestApplyFuncRunsOnChanges(t *testing.T) {
	var applied []AccessibilitySettings
	s := Open(newFakeStorage(),
		WithLogger(testLogger()),
		WithApplyFunc(func(rec AccessibilitySettings) { applied = append(applied, rec) }),
	)

	require.NoError(t, s.Update(Partial{Theme: ptr(ThemeLight)}))
	require.NoError(t, s.Reset())
	require.Error(t, s.Update(Partial{Theme: ptr(Theme("neon"))}))

	require.Len(t, applied, 2, "the hook must not run for rejected updates")
	assert.Equal(t, ThemeLight, applied[0].Theme)
	assert.Equal(t, Defaults(), applied[1])
}

func TestUpdatePersistFailureKeepsNewValue(t *testing.T) {
	fake := newFakeStorage()
	fake.failSet = true

	applied := 0
	s := Open(fake,
		WithLogger(testLogger()),
		WithApplyFunc(func(AccessibilitySettings) { applied++ }),
	)

	err := s.Update(Partial{Theme: ptr(ThemeDark)})
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)

	// The choice is kept for this session and presentation still follows it.
	assert.Equal(t, ThemeDark, s.Settings().Theme)
	assert.Equal(t, 1, applied)
}

func TestRoundtripThroughFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")

	files, err := storage.Open(path, testLogger())
	require.NoError(t, err)

	s := Open(files, WithLogger(testLogger()))
	require.NoError(t, s.Update(Partial{
		Theme:    ptr(ThemeHighContrast),
		FontSize: ptr(FontSizeExtraLarge),
		Support:  &SupportPartial{PTSD: ptr(true)},
	}))
	want := s.Settings()

	reopenedFiles, err := storage.Open(path, testLogger())
	require.NoError(t, err)
	reopened := Open(reopenedFiles, WithLogger(testLogger()))

	assert.Equal(t, want, reopened.Settings())
}
