// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}

	config := &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}

// ReviewerConfig holds the reviewer credentials that gate the scoring API.
// Applicant data is sensitive, so the HTTP surface stays locked unless a
// reviewer identity is configured.
type ReviewerConfig struct {
	Email        string
	PasswordHash string
	Pepper       string // optional global secret appended before hashing
}

// NewReviewerConfig creates reviewer credentials from environment variables.
// It reads REVIEWER_EMAIL and REVIEWER_PASSWORD_HASH (a bcrypt hash, see the
// hash-password command) plus the optional PASSWORD_PEPPER. When neither
// variable is set it returns (nil, nil): authentication is disabled.
func NewReviewerConfig() (*ReviewerConfig, error) {
	email := os.Getenv("REVIEWER_EMAIL")
	hash := os.Getenv("REVIEWER_PASSWORD_HASH")

	if email == "" && hash == "" {
		return nil, nil
	}

	config := &ReviewerConfig{
		Email:        email,
		PasswordHash: hash,
		Pepper:       os.Getenv("PASSWORD_PEPPER"), // empty if not set
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ReviewerConfig) normalize() error {
	if c.Email == "" {
		return fmt.Errorf("REVIEWER_EMAIL is required when REVIEWER_PASSWORD_HASH is set")
	}
	if c.PasswordHash == "" {
		return fmt.Errorf("REVIEWER_PASSWORD_HASH is required when REVIEWER_EMAIL is set")
	}
	return nil
}

// VerifyCredentials checks a login attempt against the configured reviewer.
func (c *ReviewerConfig) VerifyCredentials(email, password string) bool {
	if email != c.Email {
		return false
	}

	pw := password
	if c.Pepper != "" {
		pw = password + c.Pepper
	}

	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(pw)) == nil
}
