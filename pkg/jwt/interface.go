package jwt

import "fmt"

// IManager defines the interface for JWT token generation and verification.
// Implementations are safe for concurrent use.
type IManager interface {
	CreateToken(userID int64, deviceID string) (string, error)
	Verify(tokenString string) (*Claims, error)
}

// New creates a new JWT manager with an HS256 symmetric key. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("jwt: secret key must be at least %d characters long, got %d",
			MinSecretKeyLen, len(cfg.SecretKey))
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       cfg.TTL,
	}, nil
}
