package config

import (
	"fmt"
	"os"
	"strconv"
)

// jwtMinSecretLen is the minimum accepted secret length; HS256 with a short
// secret is trivially brute-forceable.
const jwtMinSecretLen = 32

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a JWT configuration from environment variables:
// JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(secret) < jwtMinSecretLen {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", jwtMinSecretLen)
	}

	expHours := 24
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h < 1 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %q", v)
		}
		expHours = h
	}

	return &JWTConfig{Secret: secret, ExpirationHours: expHours}, nil
}
