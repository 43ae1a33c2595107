package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is what the web client keeps in browser local storage: the
// session token and the theme preference.
type Settings struct {
	Token string `json:"token"`
	Theme string `json:"theme"`
}

// SettingsStore persists settings as a JSON file. It is the explicit
// state container for session-scoped preferences; callers hold an
// instance rather than reaching for process globals.
type SettingsStore struct {
	mu   sync.Mutex
	path string
}

func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load reads the stored settings. A missing file yields the defaults
// (no token, dark theme).
func (s *SettingsStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := Settings{Theme: ThemeDark}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return Settings{Theme: ThemeDark}, err
	}
	if settings.Theme != ThemeLight && settings.Theme != ThemeDark {
		settings.Theme = ThemeDark
	}
	return settings, nil
}

func (s *SettingsStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes stored settings, the logout path.
func (s *SettingsStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
