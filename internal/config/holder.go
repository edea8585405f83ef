package config

import "sync"

// SettingsHolder serializes access to the in-memory settings and keeps
// the backing file in sync: updates validate, persist, and only then
// replace the in-memory value.
type SettingsHolder struct {
	mu   sync.RWMutex
	path string
	s    Settings
}

// NewSettingsHolder loads settings from path (defaults when the file is
// missing) and wraps them.
func NewSettingsHolder(path string) (*SettingsHolder, error) {
	s, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}
	return &SettingsHolder{path: path, s: s}, nil
}

// Get returns the current settings value.
func (h *SettingsHolder) Get() Settings {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.s
}

// Update validates and persists the new settings, then swaps them in. On
// any failure the previous settings remain in effect.
func (h *SettingsHolder) Update(s Settings) error {
	if err := SaveSettings(h.path, s); err != nil {
		return err
	}
	h.mu.Lock()
	h.s = s
	h.mu.Unlock()
	return nil
}
