package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveAndLoadSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := DefaultSettings()
	s.Query = "Go developer"
	s.Days = 7
	s.Hybrid = true
	s.AutoRefresh = true

	require.NoError(t, SaveSettings(path, s))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSettings_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestSettingsValidate_Bounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"empty query", func(s *Settings) { s.Query = "" }},
		{"days too small", func(s *Settings) { s.Days = 0 }},
		{"days too large", func(s *Settings) { s.Days = 31 }},
		{"interval too small", func(s *Settings) { s.RefreshIntervalMinutes = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := DefaultSettings()
			c.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestSaveSettings_RejectsInvalid(t *testing.T) {
	s := DefaultSettings()
	s.Days = 99
	err := SaveSettings(filepath.Join(t.TempDir(), "settings.json"), s)
	assert.Error(t, err)
}

func TestExcludeTerms(t *testing.T) {
	s := Settings{Exclude: " Android, QA ,, Tester "}
	assert.Equal(t, []string{"Android", "QA", "Tester"}, s.ExcludeTerms())

	assert.Nil(t, Settings{}.ExcludeTerms())
}

func TestAuthConfig(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	cfg := &AuthConfig{PasswordHash: hash}
	assert.True(t, cfg.Enabled())
	assert.True(t, cfg.VerifyPassword("hunter2"))
	assert.False(t, cfg.VerifyPassword("wrong"))

	assert.False(t, (&AuthConfig{}).Enabled())
}
