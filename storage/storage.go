// Package storage persists gallery state between runs: the shuffled card
// layout per view profile and a few window settings. Items are JSON blobs in
// a gdata store.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/folio/viewport"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const (
	settingsKey  = "settings"
	layoutPrefix = "layout-"
)

// ItemStore is the key/value surface of a gdata.Manager.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Layout is a shuffled arrangement of the gallery together with where the
// camera was looking when it was saved.
type Layout struct {
	Profile  string            `json:"profile"`
	Projects []viewport.Entity `json:"projects"`
	Offset   viewport.Vec3     `json:"offset"`
}

// Settings are window preferences.
type Settings struct {
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

// Store reads and writes gallery state. A nil *Store is valid and behaves
// as an empty store that drops writes, so persistence failures never stop
// the gallery from running.
type Store struct {
	items ItemStore
	log   *zap.Logger
}

// Open opens the per-user gdata store for appName.
func Open(appName string, log *zap.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: open %q: %w", appName, err)
	}
	return New(m, log), nil
}

// New wraps an existing item store.
func New(items ItemStore, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{items: items, log: log}
}

// LoadLayout returns the saved layout for profile, or nil if none exists.
func (s *Store) LoadLayout(profile string) (*Layout, error) {
	var l Layout
	ok, err := s.load(layoutPrefix+profile, &l)
	if err != nil || !ok {
		return nil, err
	}
	if l.Profile != profile {
		s.log.Warn("discarding layout saved for another profile",
			zap.String("want", profile), zap.String("got", l.Profile))
		return nil, nil
	}
	return &l, nil
}

func (s *Store) SaveLayout(l Layout) error {
	return s.save(layoutPrefix+l.Profile, l)
}

// LoadSettings returns saved settings, or nil if none exist.
func (s *Store) LoadSettings() (*Settings, error) {
	var st Settings
	ok, err := s.load(settingsKey, &st)
	if err != nil || !ok {
		return nil, err
	}
	return &st, nil
}

func (s *Store) SaveSettings(st Settings) error {
	return s.save(settingsKey, st)
}

// Reset clears the layouts of the given profiles and the settings.
func (s *Store) Reset(profiles ...string) error {
	if s == nil {
		return nil
	}
	keys := append([]string{settingsKey}, profiles...)
	for i, p := range profiles {
		keys[i+1] = layoutPrefix + p
	}
	for _, k := range keys {
		if err := s.items.SaveItem(k, nil); err != nil {
			return fmt.Errorf("storage: clear %s: %w", k, err)
		}
	}
	s.log.Info("cleared saved state", zap.Strings("keys", keys))
	return nil
}

func (s *Store) load(key string, v any) (bool, error) {
	if s == nil {
		return false, nil
	}
	data, err := s.items.LoadItem(key)
	if err != nil {
		s.log.Warn("could not load item", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("storage: parse %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(key string, v any) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}
	if err := s.items.SaveItem(key, data); err != nil {
		return fmt.Errorf("storage: save %s: %w", key, err)
	}
	s.log.Debug("saved item", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}
