package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// Claims represents the token claims carried for a caller.
type Claims struct {
	UserID   int64  `json:"uid"`
	DeviceID string `json:"did,omitempty"`
	jwt.RegisteredClaims
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}
