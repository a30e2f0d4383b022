package storage

import (
	"errors"
	"testing"

	"github.com/automoto/folio/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func newMemItems() *memItems {
	return &memItems{items: map[string][]byte{}}
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestLayoutRoundTrip(t *testing.T) {
	s := New(newMemItems(), nil)

	want := Layout{
		Profile: "desktop",
		Projects: []viewport.Entity{
			{ID: "orbit", X: -120, Y: 40, Z: 300},
			{ID: "tide", X: 900, Y: -600, Z: 10, Width: 320, Height: 200},
		},
		Offset: viewport.Vec3{X: 5, Y: -5, Z: 100},
	}
	require.NoError(t, s.SaveLayout(want))

	got, err := s.LoadLayout("desktop")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	missing, err := s.LoadLayout("mobile")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLoadLayoutRejectsMismatchedProfile(t *testing.T) {
	items := newMemItems()
	items.items["layout-mobile"] = []byte(`{"profile":"desktop","projects":[]}`)

	got, err := New(items, nil).LoadLayout("mobile")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadCorruptItem(t *testing.T) {
	items := newMemItems()
	items.items["settings"] = []byte("{not json")

	_, err := New(items, nil).LoadSettings()
	assert.ErrorContains(t, err, "storage: parse settings")
}

func TestLoadErrorIsNotFatal(t *testing.T) {
	items := newMemItems()
	items.loadErr = errors.New("disk gone")

	st, err := New(items, nil).LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, st)
}

func TestSaveErrorWrapped(t *testing.T) {
	items := newMemItems()
	items.saveErr = errors.New("read-only")

	err := New(items, nil).SaveSettings(Settings{Fullscreen: true})
	assert.ErrorIs(t, err, items.saveErr)
}

func TestReset(t *testing.T) {
	items := newMemItems()
	s := New(items, nil)
	require.NoError(t, s.SaveSettings(Settings{Fullscreen: true}))
	require.NoError(t, s.SaveLayout(Layout{Profile: "desktop"}))

	require.NoError(t, s.Reset("desktop", "mobile"))

	st, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, st)
	l, err := s.LoadLayout("desktop")
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestNilStore(t *testing.T) {
	var s *Store

	assert.NoError(t, s.SaveLayout(Layout{Profile: "desktop"}))
	l, err := s.LoadLayout("desktop")
	assert.NoError(t, err)
	assert.Nil(t, l)
	assert.NoError(t, s.Reset("desktop"))
}
