// Package config provides search settings loading, validation, and
// persistence, plus auth-related configuration read from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared across Settings checks; struct tags carry the rules.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Settings holds the user-configurable search criteria. Loaded once at
// startup, mutated only by an explicit save, and persisted immediately on
// save.
type Settings struct {
	// Query is the search keyword sent to the upstream API.
	Query string `json:"query" validate:"required"`
	// Exclude is a comma-separated list of terms joined into the query
	// as NOT clauses.
	Exclude string `json:"exclude"`
	// Days bounds how far back the upstream search looks.
	Days int `json:"days" validate:"min=1,max=30"`

	// Work-mode filters. When all three (or none) are selected the
	// upstream schedule filter is omitted entirely.
	Remote bool `json:"remote"`
	Hybrid bool `json:"hybrid"`
	Office bool `json:"office"`

	// Region filters.
	Russia  bool `json:"russia"`
	Belarus bool `json:"belarus"`

	// Auto-refresh.
	AutoRefresh            bool `json:"auto_refresh"`
	RefreshIntervalMinutes int  `json:"refresh_interval_minutes" validate:"min=1,max=1440"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Query:                  "Java developer",
		Exclude:                "Android, QA, Tester, Analyst, C#, Architect, PHP, Fullstack, 1C, Python, Frontend",
		Days:                   1,
		Remote:                 true,
		Russia:                 true,
		Belarus:                true,
		AutoRefresh:            false,
		RefreshIntervalMinutes: 30,
	}
}

// ExcludeTerms splits the Exclude field on commas, trimming whitespace and
// dropping empty entries.
func (s Settings) ExcludeTerms() []string {
	var terms []string
	for _, t := range strings.Split(s.Exclude, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// Validate checks the settings against their declared constraints.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// LoadSettings reads settings from a JSON file. A missing file yields the
// defaults; a malformed or invalid file is an error so the caller can
// surface it rather than silently running with a half-read configuration.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SaveSettings validates and writes settings to a JSON file atomically.
func SaveSettings(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}
