package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the admin credential used by the API login endpoint.
// When no hash is configured the server runs with authentication disabled,
// which is the local single-user mode.
type AuthConfig struct {
	PasswordHash string
}

// NewAuthConfig reads ADMIN_PASSWORD_HASH from the environment. An empty
// value is allowed and means auth is disabled.
func NewAuthConfig() *AuthConfig {
	return &AuthConfig{PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH")}
}

// Enabled reports whether a credential is configured.
func (c *AuthConfig) Enabled() bool { return c.PasswordHash != "" }

// VerifyPassword compares a plaintext password against the stored bcrypt
// hash.
func (c *AuthConfig) VerifyPassword(pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(pw)) == nil
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
// Used by the CLI helper, not by the server itself.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
